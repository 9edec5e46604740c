package ports

// Verifier answers whether a build's outputs are all present on disk.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// VerifyOutputs reports whether every destination in outputs exists
	// under outputDir. A missing file is a normal false, not an error.
	VerifyOutputs(outputDir string, outputs []string) (bool, error)
}

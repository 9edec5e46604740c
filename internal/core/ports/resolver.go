package ports

// InputResolver defines the interface for resolving source patterns.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs resolves the given source patterns to a sorted list of
	// concrete file paths relative to root. A pattern that matches nothing
	// contributes nothing.
	ResolveInputs(patterns []string, root string) ([]string, error)
}

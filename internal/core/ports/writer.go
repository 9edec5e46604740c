package ports

// OutputWriter defines the interface for writing rendered pages.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type OutputWriter interface {
	// Write stores the rendered content under the given destination url,
	// creating parent directories as needed.
	Write(url string, content string) error
}

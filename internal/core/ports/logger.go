package ports

// Logger is the leveled logging surface the app and adapters write to.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info reports normal progress.
	Info(msg string)
	// Warn reports something off that did not stop the work.
	Warn(msg string)
	// Error reports a failure, including any metadata attached to it.
	Error(err error)
}

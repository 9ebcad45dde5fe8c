package ports

// Logger defines the interface for operator-facing diagnostics.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs an advisory message that never blocks the build.
	Warn(msg string)
	// Error logs an error with its cause chain.
	Error(err error)
}

// Package logger defines the logging contract used across the application.
package logger

// AppLogger is the logging interface the rest of the application depends on,
// keeping the concrete backend swappable.
type AppLogger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)

	// Info logs a message at info level.
	Info(msg string, args ...any)

	// Warn logs a message at warn level.
	Warn(msg string, args ...any)

	// Error logs a message at error level.
	Error(msg string, args ...any)

	// With returns a derived logger carrying the given key-value context.
	With(args ...any) AppLogger
}

package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects log output. Used by tests and the CLI layer.
	SetOutput(w io.Writer)

	// SetJSON toggles JSON log output for machine consumption.
	SetJSON(enable bool)
}

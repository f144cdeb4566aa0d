package domain

import "time"

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// TelemetrySummary aggregates the vertices recorded during a session.
type TelemetrySummary struct {
	Total     int
	Completed int
	Errored   int
	// Cached counts vertices that needed no work.
	Cached   int
	Duration time.Duration
}

// Succeeded returns the number of completed vertices that did work without error.
func (s TelemetrySummary) Succeeded() int {
	return s.Completed - s.Errored - s.Cached
}

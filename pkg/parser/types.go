// Package parser turns raw log lines into structured records.
package parser

// Sentinel values for absent optional fields.
const (
	// UnknownLevel marks records whose source carried no severity tag.
	UnknownLevel = "UNKNOWN"

	// UnknownService is the label used where a service name is required
	// but the record carries none.
	UnknownService = "unknown"
)

// LevelError is the severity tag the sequence and anomaly detectors key on.
const LevelError = "ERROR"

// Record is a single structured log entry derived from one input line.
// A Record exists only if its line decoded successfully under the file's
// declared format; it is immutable once built and read by every analyzer.
type Record struct {
	// Timestamp is the producer-assigned timestamp. It is kept as an
	// opaque ordering-preserving token, never parsed into a time value.
	Timestamp string `json:"timestamp"`

	// Level is the severity tag. UnknownLevel when the source carries none.
	Level string `json:"level"`

	// ID is a free-form identifier token.
	ID string `json:"id"`

	// Service is the emitting service name. Empty when absent.
	Service string `json:"service"`

	// Message is the log message, trimmed of surrounding whitespace.
	Message string `json:"message"`

	// Duration is the optional numeric duration field. Nil when the
	// source record carries none; no format guarantees it.
	Duration *float64 `json:"duration,omitempty"`

	// Extra preserves unrecognized fields from self-describing formats.
	// Analyzers ignore it.
	Extra map[string]string `json:"-"`
}

// ServiceLabel returns the record's service name, or UnknownService when
// the record carries none.
func (r *Record) ServiceLabel() string {
	if r.Service == "" {
		return UnknownService
	}
	return r.Service
}

// IsError reports whether the record is ERROR level.
func (r *Record) IsError() bool {
	return r.Level == LevelError
}

// Package logging provides a small logging abstraction so that pipeline
// packages do not depend on a specific logging framework. The production
// implementation is backed by logrus; tests use MockLogger.
package logging

// Logger is the structured logging interface used throughout the pipeline.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names so log output stays consistent across packages.
const (
	FieldFile     = "file"
	FieldParser   = "parser"
	FieldCategory = "category"
	FieldReason   = "reason"
	FieldCount    = "count"
	FieldStrategy = "strategy"
	FieldBatch    = "batch_id"
)

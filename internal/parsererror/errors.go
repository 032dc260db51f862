// Package parsererror defines the typed errors surfaced by statement
// parsers and the categorization engine.
package parsererror

import "fmt"

// ParseError reports a failure while parsing a specific field of a
// statement.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports input that does not conform to the format a
// parser expects. The dispatcher treats it as a signal to try the next
// strategy, not as a fatal condition.
type InvalidFormatError struct {
	FileName       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in '%s': %s (expected %s)",
		e.FileName, e.Msg, e.ExpectedFormat)
}

// DataExtractionError reports that required data could not be extracted
// from an otherwise well-formed file.
type DataExtractionError struct {
	FileName string
	Field    string
	Reason   string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in '%s' for field '%s': %s",
		e.FileName, e.Field, e.Reason)
}

// CategorizationError reports a strategy failure inside the
// categorization engine. The engine recovers with the fallback category,
// so this error is logged rather than propagated to ingestion.
type CategorizationError struct {
	Description string
	Strategy    string
	Err         error
}

func (e *CategorizationError) Error() string {
	return fmt.Sprintf("categorization failed for %q using %s: %v",
		e.Description, e.Strategy, e.Err)
}

func (e *CategorizationError) Unwrap() error {
	return e.Err
}

package parser

import (
	"fmt"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

// Status classifies the result of running one parsing strategy.
type Status int

const (
	// StatusParsed means the strategy produced at least one row.
	StatusParsed Status = iota
	// StatusEmpty means the strategy ran cleanly but found nothing.
	StatusEmpty
	// StatusFailed means the strategy returned an error or panicked.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusParsed:
		return "parsed"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the tagged result of one strategy attempt. Keeping the
// fallback policy in terms of Outcome values (rather than nested error
// handling) makes the chain testable in isolation.
type Outcome struct {
	Strategy string
	Status   Status
	Rows     []models.Transaction
	Err      error
}

// Run executes a single strategy, converting panics and errors into
// Failed outcomes and empty results into Empty.
func Run(p StatementParser, doc *models.Document) (out Outcome) {
	out.Strategy = p.Name()
	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Err = fmt.Errorf("%s: panic: %v", p.Name(), r)
			out.Rows = nil
		}
	}()

	rows, err := p.Parse(doc)
	switch {
	case err != nil:
		out.Status = StatusFailed
		out.Err = err
	case len(rows) == 0:
		out.Status = StatusEmpty
	default:
		out.Status = StatusParsed
		out.Rows = rows
	}
	return out
}

// RunChain evaluates strategies in order and returns the first Parsed
// outcome. When every strategy comes up Empty or Failed, the last
// outcome is returned so callers can report what was attempted.
func RunChain(parsers []StatementParser, doc *models.Document) Outcome {
	var last Outcome
	for _, p := range parsers {
		last = Run(p, doc)
		if last.Status == StatusParsed {
			return last
		}
	}
	if last.Strategy == "" {
		last.Status = StatusEmpty
	}
	return last
}

// Package parser defines the contract shared by all bank statement
// parsing strategies and the tagged results the dispatcher's fallback
// chain is built from.
package parser

import (
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

// StatementParser is one parsing strategy. Implementations turn an
// extracted document into candidate transactions. A strategy never
// panics past its boundary; internal row failures reduce yield. Zero
// rows is a signal that the dispatcher should try the next strategy,
// not an error.
type StatementParser interface {
	// Name identifies the strategy in logs and import summaries.
	Name() string

	// Parse returns the transactions recovered from the document.
	Parse(doc *models.Document) ([]models.Transaction, error)
}

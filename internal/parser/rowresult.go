package parser

import (
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

// RowResult makes the fail-open row policy explicit: every candidate
// line either yields an accepted row or a rejection with a reason. The
// external contract still only surfaces aggregate counts, but keeping
// the variant visible keeps the drop policy intentional and testable.
type RowResult struct {
	Row      models.Transaction
	Rejected bool
	Reason   string
}

// Accept wraps a valid row.
func Accept(row models.Transaction) RowResult {
	return RowResult{Row: row}
}

// Reject records a dropped candidate with the reason it failed.
func Reject(reason string) RowResult {
	return RowResult{Rejected: true, Reason: reason}
}

// Collect splits results into accepted rows and a drop count.
func Collect(results []RowResult) ([]models.Transaction, int) {
	rows := make([]models.Transaction, 0, len(results))
	dropped := 0
	for _, r := range results {
		if r.Rejected {
			dropped++
			continue
		}
		rows = append(rows, r.Row)
	}
	return rows, dropped
}

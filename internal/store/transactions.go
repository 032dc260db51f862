package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parsererror"
)

// InsertTransactions stores a batch of parsed rows inside one
// transaction so a failed import leaves nothing behind. statementID may
// be zero when the rows did not come from an archived statement.
func (s *Store) InsertTransactions(rows []models.Transaction, batchID string, statementID int64) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO transactions
			(date, description, amount, currency, card, who, category,
			 need_category, notes, split_cost, outlier, batch_id, statement_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		var stmtID interface{}
		if statementID > 0 {
			stmtID = statementID
		}
		_, err := stmt.Exec(
			row.Date, row.Description, row.Amount.String(), row.Currency,
			row.Card, row.Who, row.Category, row.NeedCategory, row.Notes,
			boolToInt(row.SplitCost), boolToInt(row.Outlier), batchID, stmtID)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	log.Debugf("Inserted %d transactions for batch %s", len(rows), batchID)
	return nil
}

// ListTransactions returns every stored transaction, newest date first.
func (s *Store) ListTransactions() ([]models.StoredTransaction, error) {
	rows, err := s.db.Query(`
		SELECT id, date, description, amount, currency, card, who,
		       category, need_category, notes, split_cost, outlier
		FROM transactions
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []models.StoredTransaction
	for rows.Next() {
		var t models.StoredTransaction
		var amount string
		var splitCost, outlier int
		err := rows.Scan(&t.ID, &t.Date, &t.Description, &amount, &t.Currency,
			&t.Card, &t.Who, &t.Category, &t.NeedCategory, &t.Notes,
			&splitCost, &outlier)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: "store",
				Field:  "amount",
				Value:  amount,
				Err:    err,
			}
		}
		t.SplitCost = splitCost != 0
		t.Outlier = outlier != 0
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTransactionCategory sets the category and need classification
// for one stored transaction.
func (s *Store) UpdateTransactionCategory(id int64, category, needCategory string) error {
	_, err := s.db.Exec(
		`UPDATE transactions SET category = ?, need_category = ? WHERE id = ?`,
		category, needCategory, id)
	if err != nil {
		return fmt.Errorf("update transaction category: %w", err)
	}
	return nil
}

// CountTransactionsByBatch reports how many rows an import batch wrote.
func (s *Store) CountTransactionsByBatch(batchID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM transactions WHERE batch_id = ?`, batchID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count batch transactions: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

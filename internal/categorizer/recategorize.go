package categorizer

import (
	"context"
	"fmt"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// RecategorizeAll re-resolves categories for stored transactions whose
// category is still a placeholder. Rows with an override and rows the
// user already settled on a real category keep their values; bulk
// recategorization must never undo manual curation. Returns the number
// of rows updated.
func (e *Engine) RecategorizeAll(ctx context.Context, txStore TransactionStore) (int, error) {
	rows, err := txStore.ListTransactions()
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	updated := 0
	for _, row := range rows {
		if !isPlaceholderCategory(row.Category) {
			continue
		}

		override, err := e.store.GetOverride(textutils.NormalizeDescription(row.Description))
		if err != nil {
			e.logger.WithError(err).Warn("Override lookup failed, skipping row",
				logging.Field{Key: "id", Value: row.ID})
			continue
		}
		if override != nil {
			continue
		}

		category := e.GuessCategory(ctx, row.Description)
		needCategory := row.NeedCategory
		if needCategory == "" {
			needCategory = e.GuessNeedCategory(row.Description, category)
		}
		if category == row.Category && needCategory == row.NeedCategory {
			continue
		}

		if err := txStore.UpdateTransactionCategory(row.ID, category, needCategory); err != nil {
			return updated, fmt.Errorf("update transaction %d: %w", row.ID, err)
		}
		updated++
	}

	e.logger.Info("Recategorization complete",
		logging.Field{Key: "scanned", Value: len(rows)},
		logging.Field{Key: "updated", Value: updated})
	return updated, nil
}

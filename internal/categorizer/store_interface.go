package categorizer

import (
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

// CategoryStore is the persistence surface the engine reads from. The
// engine never writes: overrides and rules are maintained at the store
// boundary, the engine only consults them.
type CategoryStore interface {
	// GetOverride returns the stored override for a normalized
	// description, or nil when none exists.
	GetOverride(description string) (*models.Override, error)

	// ListCategoryLabels returns every known category label.
	ListCategoryLabels() ([]models.CategoryLabel, error)

	// CategoryExamples returns the example phrases per category used to
	// build embedding centroids.
	CategoryExamples() (map[string][]string, error)

	// MerchantRules returns normalized merchant substring to category
	// mappings.
	MerchantRules() (map[string]string, error)
}

// TransactionStore is the surface the bulk recategorization pass needs.
type TransactionStore interface {
	ListTransactions() ([]models.StoredTransaction, error)
	UpdateTransactionCategory(id int64, category, needCategory string) error
}

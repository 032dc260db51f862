package store

import (
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// MockStore is an in-memory stand-in for Store in tests. It satisfies
// the categorization engine's store interfaces without a database.
type MockStore struct {
	Overrides    map[string]models.Override
	Labels       []models.CategoryLabel
	Examples     map[string][]string
	Rules        map[string]string
	Transactions []models.StoredTransaction

	// Error flags for testing error conditions.
	GetOverrideError      error
	ListLabelsError       error
	CategoryExamplesError error
	MerchantRulesError    error
	ListTransactionsError error
	UpdateCategoryError   error

	CategoryUpdates map[int64][2]string
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		Overrides:       make(map[string]models.Override),
		Examples:        make(map[string][]string),
		Rules:           make(map[string]string),
		CategoryUpdates: make(map[int64][2]string),
	}
}

// GetOverride returns the mock override for a normalized description.
func (m *MockStore) GetOverride(description string) (*models.Override, error) {
	if m.GetOverrideError != nil {
		return nil, m.GetOverrideError
	}
	o, ok := m.Overrides[textutils.NormalizeDescription(description)]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// SetOverride stores an override, merging like the real store.
func (m *MockStore) SetOverride(o models.Override) error {
	o.Description = textutils.NormalizeDescription(o.Description)
	existing, ok := m.Overrides[o.Description]
	if ok {
		if o.Category == "" {
			o.Category = existing.Category
		}
		if o.NeedCategory == "" {
			o.NeedCategory = existing.NeedCategory
		}
	}
	m.Overrides[o.Description] = o
	return nil
}

// ListCategoryLabels returns the mock labels.
func (m *MockStore) ListCategoryLabels() ([]models.CategoryLabel, error) {
	if m.ListLabelsError != nil {
		return nil, m.ListLabelsError
	}
	return m.Labels, nil
}

// CategoryExamples returns the mock example phrases.
func (m *MockStore) CategoryExamples() (map[string][]string, error) {
	if m.CategoryExamplesError != nil {
		return nil, m.CategoryExamplesError
	}
	result := make(map[string][]string, len(m.Examples))
	for k, v := range m.Examples {
		result[k] = append([]string(nil), v...)
	}
	return result, nil
}

// MerchantRules returns the mock merchant rules.
func (m *MockStore) MerchantRules() (map[string]string, error) {
	if m.MerchantRulesError != nil {
		return nil, m.MerchantRulesError
	}
	result := make(map[string]string, len(m.Rules))
	for k, v := range m.Rules {
		result[k] = v
	}
	return result, nil
}

// ListTransactions returns the mock transactions.
func (m *MockStore) ListTransactions() ([]models.StoredTransaction, error) {
	if m.ListTransactionsError != nil {
		return nil, m.ListTransactionsError
	}
	return m.Transactions, nil
}

// UpdateTransactionCategory records the update and mutates the mock row.
func (m *MockStore) UpdateTransactionCategory(id int64, category, needCategory string) error {
	if m.UpdateCategoryError != nil {
		return m.UpdateCategoryError
	}
	m.CategoryUpdates[id] = [2]string{category, needCategory}
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			m.Transactions[i].Category = category
			m.Transactions[i].NeedCategory = needCategory
		}
	}
	return nil
}

package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/store"
)

func TestGuessCategoryOverrideWins(t *testing.T) {
	s := store.NewMockStore()
	require.NoError(t, s.SetOverride(models.Override{Description: "STARBUCKS #123", Category: "gifts"}))
	s.Rules["starbucks"] = "food"

	e := NewEngine(s, nil, nil)
	assert.Equal(t, "gifts", e.GuessCategory(context.Background(), "Starbucks #123"))
}

func TestGuessCategoryMerchantRule(t *testing.T) {
	s := store.NewMockStore()
	s.Rules["wegmans"] = "groceries"

	e := NewEngine(s, nil, nil)
	assert.Equal(t, "groceries", e.GuessCategory(context.Background(), "WEGMANS PRINCETON NJ"))
}

func TestGuessCategoryEmbedding(t *testing.T) {
	s := store.NewMockStore()
	s.Examples["food"] = []string{"pizza"}
	s.Examples["travel"] = []string{"flight"}

	embedder := &MockEmbedder{Vectors: map[string][]float32{
		"pizza":                {1, 0},
		"flight":               {0, 1},
		"pizza place downtown": {0.9, 0.1},
	}}

	e := NewEngine(s, embedder, nil)
	assert.Equal(t, "food", e.GuessCategory(context.Background(), "PIZZA PLACE DOWNTOWN"))
}

func TestGuessCategoryFallback(t *testing.T) {
	e := NewEngine(store.NewMockStore(), nil, nil)
	assert.Equal(t, models.FallbackCategory, e.GuessCategory(context.Background(), "COMPLETELY UNKNOWN"))
}

func TestGuessCategoryBlankDescription(t *testing.T) {
	// Blank descriptions short-circuit to the fallback even when
	// centroids exist: embedding empty text would match arbitrarily.
	s := store.NewMockStore()
	s.Examples["food"] = []string{"pizza"}

	e := NewEngine(s, &MockEmbedder{}, nil)
	assert.Equal(t, models.FallbackCategory, e.GuessCategory(context.Background(), ""))
	assert.Equal(t, models.FallbackCategory, e.GuessCategory(context.Background(), "   "))
}

func TestGuessCategoryStrategyErrorContinues(t *testing.T) {
	s := store.NewMockStore()
	s.GetOverrideError = errors.New("db locked")
	s.Rules["shell"] = "travel"

	logger := &logging.MockLogger{}
	e := NewEngine(s, nil, logger)
	assert.Equal(t, "travel", e.GuessCategory(context.Background(), "SHELL OIL 5771"))

	// The failing strategy is logged and the chain moves on to a
	// successful resolution.
	require.Len(t, logger.Entries, 2)
	assert.Equal(t, "WARN", logger.Entries[0].Level)
	assert.ErrorContains(t, logger.Entries[0].Error, "db locked")
	assert.Equal(t, "DEBUG", logger.Entries[1].Level)
}

func TestCategorize(t *testing.T) {
	s := store.NewMockStore()
	s.Rules["netflix"] = "entertainment"
	e := NewEngine(s, nil, nil)

	// Inline statement categories survive, need is still resolved.
	tx := &models.Transaction{Description: "NETFLIX.COM", Category: "Supermarkets"}
	e.Categorize(context.Background(), tx)
	assert.Equal(t, "Supermarkets", tx.Category)
	assert.Equal(t, models.NeedCategoryLuxury, tx.NeedCategory)

	// Placeholders get replaced.
	tx = &models.Transaction{Description: "NETFLIX.COM", Category: models.CategoryUncategorized}
	e.Categorize(context.Background(), tx)
	assert.Equal(t, "entertainment", tx.Category)
}

func TestIsPlaceholderCategory(t *testing.T) {
	assert.True(t, isPlaceholderCategory(""))
	assert.True(t, isPlaceholderCategory(models.CategoryUncategorized))
	assert.True(t, isPlaceholderCategory(models.FallbackCategory))
	assert.True(t, isPlaceholderCategory("Other"))
	assert.False(t, isPlaceholderCategory("groceries"))
}

func TestGuessNeedCategory(t *testing.T) {
	s := store.NewMockStore()
	require.NoError(t, s.SetOverride(models.Override{Description: "fancy dinner", NeedCategory: models.NeedCategoryLuxury}))
	e := NewEngine(s, nil, nil)

	tests := []struct {
		name        string
		description string
		category    string
		want        string
	}{
		{"override wins", "FANCY DINNER", "groceries", models.NeedCategoryLuxury},
		{"always-need category", "WEGMANS", "Groceries", models.NeedCategoryNeed},
		{"luxury keyword in description", "NETFLIX.COM", "", models.NeedCategoryLuxury},
		{"fallback category does not leak into the scan", "ACME HARDWARE SUPPLY 44", "shopping", models.NeedCategoryNeed},
		{"resolved category does not leak into the scan", "ACME HARDWARE SUPPLY 44", "entertainment", models.NeedCategoryNeed},
		{"default", "SHELL OIL", "fuel", models.NeedCategoryNeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.GuessNeedCategory(tt.description, tt.category))
		})
	}
}

func TestRecategorizeAll(t *testing.T) {
	s := store.NewMockStore()
	s.Rules["wegmans"] = "groceries"
	require.NoError(t, s.SetOverride(models.Override{Description: "local toys", Category: "gifts"}))
	s.Transactions = []models.StoredTransaction{
		{ID: 1, Transaction: models.Transaction{Description: "APOLLO PHARMACY", Category: "medicines", NeedCategory: models.NeedCategoryNeed}},
		{ID: 2, Transaction: models.Transaction{Description: "WEGMANS PRINCETON", Category: models.CategoryUncategorized}},
		{ID: 3, Transaction: models.Transaction{Description: "LOCAL TOYS", Category: models.CategoryUncategorized}},
	}

	e := NewEngine(s, nil, nil)
	updated, err := e.RecategorizeAll(context.Background(), s)
	require.NoError(t, err)

	// Row 1 already has a real category, row 3 has an override; only
	// row 2 is re-resolved.
	assert.Equal(t, 1, updated)
	assert.Equal(t, [2]string{"groceries", models.NeedCategoryNeed}, s.CategoryUpdates[2])
	_, touched := s.CategoryUpdates[3]
	assert.False(t, touched)
}

func TestRecategorizeAllUpdateErrorStops(t *testing.T) {
	s := store.NewMockStore()
	s.UpdateCategoryError = errors.New("disk full")
	s.Transactions = []models.StoredTransaction{
		{ID: 1, Transaction: models.Transaction{Description: "SOMETHING", Category: ""}},
	}

	e := NewEngine(s, nil, nil)
	_, err := e.RecategorizeAll(context.Background(), s)
	assert.Error(t, err)
}

func TestCentroidCache(t *testing.T) {
	s := store.NewMockStore()
	embedder := &MockEmbedder{Vectors: map[string][]float32{
		"pizza":  {1, 0},
		"flight": {0, 1},
		"query":  {0.2, 0.8},
	}}
	cache := NewCentroidCache(embedder, s, nil)

	// No examples yet: the cache builds empty and abstains.
	_, _, ok, err := cache.BestMatch(context.Background(), "query")
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidate picks up newly added examples.
	s.Examples["food"] = []string{"pizza"}
	s.Examples["travel"] = []string{"flight"}
	cache.Invalidate()

	category, score, ok, err := cache.BestMatch(context.Background(), "query")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "travel", category)
	assert.Greater(t, score, 0.9)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float32{1, 0}, []float32{1, 0, 0}))
	assert.Equal(t, 0.0, cosine([]float32{0, 0}, []float32{1, 0}))
}

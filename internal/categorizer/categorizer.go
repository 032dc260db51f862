// Package categorizer assigns spending categories to parsed
// transactions. Resolution runs a fixed chain of strategies: user
// overrides, then merchant rules, then nearest embedding centroid, with
// a fixed fallback category when every strategy abstains or errors.
// Categorization never blocks an import: errors degrade to the fallback
// instead of surfacing to the caller.
package categorizer

import (
	"context"
	"strings"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/logging"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parsererror"
)

// Engine resolves categories for transaction descriptions.
type Engine struct {
	store      CategoryStore
	cache      *CentroidCache
	strategies []strategy
	logger     logging.Logger
}

// NewEngine wires the strategy chain over the given store and embedder.
// A nil embedder disables the embedding strategy; overrides and merchant
// rules keep working and everything else falls back.
func NewEngine(store CategoryStore, embedder Embedder, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	e := &Engine{store: store, logger: logger}
	e.strategies = []strategy{
		&overrideStrategy{store: store},
		&merchantStrategy{store: store},
	}
	if embedder != nil {
		e.cache = NewCentroidCache(embedder, store, logger)
		e.strategies = append(e.strategies, &embeddingStrategy{cache: e.cache, logger: logger})
	}
	return e
}

// InvalidateCache drops the embedding centroid cache, forcing a rebuild
// on the next lookup. Called after category labels or examples change.
func (e *Engine) InvalidateCache() {
	if e.cache != nil {
		e.cache.Invalidate()
	}
}

// GuessCategory resolves a category for the description. It never
// fails: a strategy error is logged and the chain moves on, and the
// fallback category covers a fully exhausted chain. A blank description
// goes straight to the fallback; embedding empty text would match an
// arbitrary centroid.
func (e *Engine) GuessCategory(ctx context.Context, description string) string {
	if strings.TrimSpace(description) == "" {
		return models.FallbackCategory
	}
	for _, s := range e.strategies {
		category, ok, err := s.Guess(ctx, description)
		if err != nil {
			cerr := &parsererror.CategorizationError{
				Description: description,
				Strategy:    s.Name(),
				Err:         err,
			}
			e.logger.WithError(cerr).Warn("Categorization strategy failed")
			continue
		}
		if ok {
			e.logger.Debug("Category resolved",
				logging.Field{Key: "strategy", Value: s.Name()},
				logging.Field{Key: "category", Value: category})
			return category
		}
	}
	return models.FallbackCategory
}

// Categorize fills in the category and need classification for rows
// that still carry a placeholder category. Rows with a real category
// from parsing (inline statement categories) are left alone, but an
// empty need classification is always resolved.
func (e *Engine) Categorize(ctx context.Context, tx *models.Transaction) {
	if isPlaceholderCategory(tx.Category) {
		tx.Category = e.GuessCategory(ctx, tx.Description)
	}
	if tx.NeedCategory == "" {
		tx.NeedCategory = e.GuessNeedCategory(tx.Description, tx.Category)
	}
}

// isPlaceholderCategory reports whether a category value carries no
// real signal: empty, the parser placeholder, the engine fallback, or
// the regional keyword catch-all.
func isPlaceholderCategory(category string) bool {
	switch category {
	case "", models.CategoryUncategorized, models.FallbackCategory, "Other":
		return true
	}
	return false
}

package categorizer

import (
	"strings"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// GuessNeedCategory resolves the Need/Luxury classification for a
// description and its resolved category. An override with a need value
// wins, then the always-need category set, then luxury keywords in the
// description. Everything else counts as Need.
func (e *Engine) GuessNeedCategory(description, category string) string {
	normalized := textutils.NormalizeDescription(description)

	override, err := e.store.GetOverride(normalized)
	if err != nil {
		e.logger.WithError(err).Warn("Override lookup failed during need classification")
	} else if override != nil && override.NeedCategory != "" {
		return override.NeedCategory
	}

	if models.AlwaysNeedCategories[strings.ToLower(category)] {
		return models.NeedCategoryNeed
	}

	// Keyword scan runs over the description only. The resolved category
	// must not leak in here: "shopping" is both a luxury keyword and the
	// fallback category, and the whole unknown bucket defaults to Need.
	if textutils.ContainsAny(normalized, models.LuxuryKeywords) {
		return models.NeedCategoryLuxury
	}
	return models.NeedCategoryNeed
}

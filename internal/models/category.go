package models

// CategoryLabel is a spending category. Name is the lowercase unique
// key. Default labels are fixed identity keys: they cannot be renamed or
// deleted, only custom labels are mutable.
type CategoryLabel struct {
	Name      string `yaml:"name"`
	Icon      string `yaml:"icon"`
	Color     string `yaml:"color"`
	IsDefault bool   `yaml:"is_default"`
}

// DefaultCategoryNames enumerates the fixed labels every installation
// starts with, in centroid-cache order.
var DefaultCategoryNames = []string{
	"food", "groceries", "entertainment", "travel", "utilities",
	"shopping", "gifts", "medicines", "charity", "school",
}

// FallbackCategory is returned when the embedding cache is empty or the
// embedding provider is unavailable.
const FallbackCategory = "shopping"

// AlwaysNeedCategories are categories whose transactions are always
// classified as Need regardless of description keywords.
var AlwaysNeedCategories = map[string]bool{
	"groceries": true,
	"utilities": true,
	"medicines": true,
	"school":    true,
	"charity":   true,
}

// LuxuryKeywords classify a description as Luxury when the resolved
// category gives no signal.
var LuxuryKeywords = []string{
	"entertainment", "shopping", "gift", "restaurant", "movie", "cinema",
	"concert", "amusement", "bowling", "show", "mall", "netflix", "theater",
}

// Override is a user-supplied correction keyed by normalized
// description. Empty fields mean "no override for that field"; merges
// preserve previously stored values.
type Override struct {
	Description  string
	Category     string
	NeedCategory string
}

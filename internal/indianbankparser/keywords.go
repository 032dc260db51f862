package indianbankparser

import (
	"strings"
	"unicode"
)

// keywordCategories is the in-parser category heuristic for Indian
// statements, applied only when the source does not already carry a
// category. It is distinct from the semantic categorization engine: a
// category assigned here is considered confident and is not revisited
// by bulk recategorization.
var keywordCategories = []struct {
	name     string
	keywords []string
}{
	{"Food & Dining", []string{
		"food", "restaurant", "cafe", "hotel", "dining",
		"swiggy", "zomato", "dominos", "pizza", "junction",
	}},
	{"Groceries", []string{
		"grocery", "supermarket", "store", "mart", "bazaar",
		"shopping", "meesho", "amazon", "flipkart",
	}},
	{"Transportation", []string{
		"uber", "ola", "taxi", "auto", "bus", "metro",
		"petrol", "fuel", "parking",
	}},
	{"Utilities", []string{
		"electricity", "water", "gas", "internet", "mobile",
		"recharge", "broadband", "wifi",
	}},
	{"Healthcare", []string{
		"hospital", "clinic", "doctor", "pharmacy", "medical",
		"health", "medicine",
	}},
	{"Entertainment", []string{
		"movie", "cinema", "entertainment", "game", "netflix",
		"spotify", "youtube",
	}},
}

// CategorizeByKeywords assigns a category from the Indian-context
// keyword lists. UPI payments to a personal name (detected by uppercase
// letters in the description) are treated as personal transfers.
func CategorizeByKeywords(description, paymentType string) string {
	if description == "" {
		return "Other"
	}
	lower := strings.ToLower(description)

	for _, kc := range keywordCategories {
		for _, kw := range kc.keywords {
			if strings.Contains(lower, kw) {
				return kc.name
			}
		}
	}

	if strings.Contains(strings.ToLower(paymentType), "upi") && hasUpper(description) {
		return "Personal Transfer"
	}
	return "Other"
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

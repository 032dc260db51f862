// Package currencyutils parses the currency amount formats found on
// bank statements and infers ISO currency codes from statement text.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount patterns tried in order. Each captures the numeric run after a
// recognized currency marker.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s?(-?[0-9,]+\.?\d*)`),
	regexp.MustCompile(`₹\s?(-?[0-9,]+\.?\d*)`),
	regexp.MustCompile(`Rs\.?\s?(-?[0-9,]+\.?\d*)`),
	regexp.MustCompile(`INR\s?(-?[0-9,]+\.?\d*)`),
	regexp.MustCompile(`(-?[0-9,]+\.?\d*)\s?(?:INR|Rs\.?|₹)`),
}

var numericRunRe = regexp.MustCompile(`-?[0-9][0-9,]*\.?\d*`)

// ParseAmount converts an amount string to a decimal. It handles leading
// currency symbols ($, ₹, Rs., INR), comma thousands separators,
// parenthesized negatives and explicit signs, and falls back to the
// first numeric run in the string. Returns zero when nothing numeric is
// found; callers must still check amount > 0 before accepting a row,
// since zero cannot be told apart from "no amount".
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
		s = strings.TrimSpace(s)
	}
	s = strings.TrimPrefix(s, "+")
	// A minus before the currency symbol ("-$12.34") would be lost by
	// the marker patterns, so strip it here and carry the sign.
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}

	value, ok := matchAmount(s)
	if !ok {
		return decimal.Zero
	}
	if negative {
		value = value.Neg()
	}
	return value
}

func matchAmount(s string) (decimal.Decimal, bool) {
	for _, re := range amountPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			if d, err := toDecimal(m[1]); err == nil {
				return d, true
			}
		}
	}
	// No currency marker matched: take the first numeric run.
	if m := numericRunRe.FindString(s); m != "" {
		if d, err := toDecimal(m); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}

func toDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	return decimal.NewFromString(s)
}

// Indicators used to infer the statement currency from raw text.
var inrMarkers = []string{"₹", "rs.", "inr", "rupee"}

// DetectCurrency returns the ISO currency code suggested by the given
// text, defaulting to USD.
func DetectCurrency(text string) string {
	lower := strings.ToLower(text)
	for _, marker := range inrMarkers {
		if strings.Contains(lower, marker) {
			return "INR"
		}
	}
	return "USD"
}

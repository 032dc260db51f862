package dispatcher

import (
	"strings"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/parser"
)

// detectKeywords score a document toward a bank variant. Scoring counts
// keyword hits over the first pages; the highest score wins and ties
// favor the generic parser.
var detectKeywords = map[parser.BankType][]string{
	parser.BankChase:    {"chase", "sapphire", "jpmorgan"},
	parser.BankDiscover: {"discover", "discover it", "cashback bonus"},
	parser.BankAmex:     {"american express", "amex", "membership rewards"},
	parser.BankVentureX: {"venture x", "capital one", "venturex"},
	parser.BankIndian: {
		"sbi", "state bank", "hdfc", "icici", "axis bank", "kotak",
		"punjab national", "bank of baroda", "idfc", "upi", "neft",
		"imps", "rtgs", "rupee",
	},
}

// indianIndicators are the independent signals used for the regional
// retry. At least minIndianIndicators distinct terms must appear before
// a generic document is re-parsed as an Indian bank statement.
var indianIndicators = []string{
	"₹", "rs.", "inr",
	"upi", "neft", "imps", "rtgs", "paytm", "phonepe",
	"sbi", "hdfc", "icici", "axis", "kotak", "baroda", "idfc",
	"mumbai", "delhi", "bangalore", "bengaluru", "chennai",
	"hyderabad", "kolkata", "pune", "ahmedabad",
}

const minIndianIndicators = 3

// detectPages bounds how much of the document detection reads.
const detectPages = 3

// DetectBankType scores the document text against each bank's keyword
// list and returns the best match, or BankGeneric when nothing scores.
func DetectBankType(text string) parser.BankType {
	lower := strings.ToLower(text)

	best := parser.BankGeneric
	bestScore := 0
	tied := false
	for bank, keywords := range detectKeywords {
		score := 0
		for _, kw := range keywords {
			score += strings.Count(lower, kw)
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = bank, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if tied {
		return parser.BankGeneric
	}
	return best
}

// CountIndianIndicators counts the distinct regional indicator terms
// present in the text.
func CountIndianIndicators(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, term := range indianIndicators {
		if strings.Contains(lower, term) {
			count++
		}
	}
	return count
}

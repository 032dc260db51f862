package parser

import (
	"strings"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// denyPhrases mark header, summary and boilerplate lines that no
// line-oriented parser should treat as a transaction.
var denyPhrases = []string{
	"previous balance",
	"minimum payment",
	"payment due",
	"new balance",
	"credit limit",
	"available credit",
	"account summary",
	"statement balance",
	"total fees",
	"total interest",
	"annual percentage",
	"page ",
	"customer service",
	"rewards balance",
	"transaction date",
	"posting date",
}

// BaseParser carries the line-filtering helpers every bank parser
// embeds.
type BaseParser struct{}

// SkipLine reports whether a line is boilerplate that should never be
// parsed as a transaction: deny-listed phrases, separator runs, or
// lines too short to carry a date and an amount.
func (b *BaseParser) SkipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 8 {
		return true
	}
	if strings.Trim(trimmed, "-=_* .") == "" {
		return true
	}
	return textutils.ContainsAny(trimmed, denyPhrases)
}

// DocumentLines returns the document's extracted lines, deriving them
// from page text when the dispatcher has not populated them.
func DocumentLines(doc *models.Document) []string {
	if len(doc.Lines) > 0 {
		return doc.Lines
	}
	return textutils.SplitLines(doc.Text())
}

// Package dispatcher selects a statement parsing strategy for an
// uploaded document, runs it, and applies the graduated fallback policy:
// declared parser, then the generic parser, then a regional retry when
// enough regional indicators are present. Bank statement layouts are not
// self-describing, so misclassification is expected and must be
// survivable.
package dispatcher

import (
	"github.com/xFahrenheit/mimis-expense-tracker/internal/amexparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/chaseparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/discoverparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/genericparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/indianbankparser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/venturexparser"
)

// NewParser returns a fresh strategy instance for a bank variant. The
// switch is exhaustive over the closed BankType enum, so adding a
// variant without a parser fails at review rather than at runtime.
func NewParser(bank parser.BankType) parser.StatementParser {
	switch bank {
	case parser.BankChase:
		return chaseparser.NewAdapter()
	case parser.BankDiscover:
		return discoverparser.NewAdapter()
	case parser.BankAmex:
		return amexparser.NewAdapter()
	case parser.BankVentureX:
		return venturexparser.NewAdapter()
	case parser.BankIndian:
		return indianbankparser.NewAdapter()
	case parser.BankGeneric:
		return genericparser.NewAdapter()
	}
	return genericparser.NewAdapter()
}

// Package models defines the value objects shared across the statement
// ingestion pipeline: documents, transactions, category labels and the
// tagged results used by the parser fallback chain.
package models

import (
	"github.com/shopspring/decimal"
)

// NeedCategory values. Need/Luxury is a binary budgeting classification
// orthogonal to the spending category. The Indian bank parser marks
// incoming transfers as NeedIncome instead of dropping them.
const (
	NeedCategoryNeed   = "Need"
	NeedCategoryLuxury = "Luxury"
	NeedCategoryIncome = "Income"
)

// CategoryUncategorized is the placeholder assigned by parsers that do
// not attach a category of their own.
const CategoryUncategorized = "Uncategorized"

// Transaction is the normalized row produced by a statement parser.
// Date is always rendered as an ISO calendar date (no time component).
// Amount is the spending magnitude; credits retained by the Indian bank
// parser carry a negative amount.
type Transaction struct {
	Date         string          `csv:"date"`
	Description  string          `csv:"description"`
	Amount       decimal.Decimal `csv:"amount"`
	Currency     string          `csv:"currency"`
	Card         string          `csv:"card"`
	Who          string          `csv:"who"`
	Category     string          `csv:"category"`
	NeedCategory string          `csv:"need_category"`
	Notes        string          `csv:"notes"`
	SplitCost    bool            `csv:"split_cost"`
	Outlier      bool            `csv:"outlier"`
}

// IsExpense reports whether the row represents spending (positive
// amount). Credits kept by the Indian parser return false.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsPositive()
}

// StoredTransaction is a Transaction with its database identity, used by
// the bulk recategorization and learned-category propagation paths.
type StoredTransaction struct {
	ID int64
	Transaction
}

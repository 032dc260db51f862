// Package indianbankparser parses Indian bank account statements (SBI,
// HDFC, ICICI and friends). It differs from the credit-card parsers in
// two deliberate ways: ambiguous numeric dates read day-first, and
// incoming transfers are retained as negative-amount income rows instead
// of being dropped, because bank accounts legitimately contain income.
package indianbankparser

import (
	"encoding/csv"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/currencyutils"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/dateutils"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const cardName = "Indian Bank"

// PaymentTypes is the payment vocabulary recognized on Indian
// statements. A match is recorded in the transaction notes.
var PaymentTypes = []string{
	"UPI payment", "UPI", "NEFT", "IMPS", "RTGS",
	"Debit Card", "Credit Card", "ATM Withdrawal",
	"Net Banking", "Mobile Banking", "Online Transfer",
	"Cash Deposit", "Cheque", "DD", "POS",
}

// creditMarkers flag incoming transactions when the amount has no
// explicit "+" sign.
var creditMarkers = []string{"received", "credited", "receipt", "refund", "cashback", "reversal"}

// Header synonyms for column detection in CSV statements.
var (
	dateHeaders     = []string{"transaction date", "value date", "posting date", "date"}
	descHeaders     = []string{"description", "transaction name", "particulars", "narration", "details"}
	amountHeaders   = []string{"transaction amount", "amount", "debit", "credit"}
	typeHeaders     = []string{"payment type", "transaction type", "mode", "type"}
	categoryHeaders = []string{"merchant category", "category"}
)

// "19 Jul, 2025  UPI payment to Swiggy  ₹450.00"
var lineRe = regexp.MustCompile(`^(\d{1,2} [A-Za-z]{3,9},? \d{4})\s+(.+?)\s+([+-]?\s?(?:₹|Rs\.?|INR)?\s?[\d,]+\.?\d*)$`)

// Adapter implements parser.StatementParser for Indian bank statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates an Indian bank statement parser.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name implements parser.StatementParser.
func (a *Adapter) Name() string {
	return "indian"
}

// Parse dispatches on the declared file type.
func (a *Adapter) Parse(doc *models.Document) ([]models.Transaction, error) {
	if doc.FileType == models.FileTypeCSV {
		return a.parseCSV(doc)
	}
	return a.parseLines(doc)
}

// columnMap resolves header cells to canonical field indices.
type columnMap struct {
	date, desc, amount, payType, category int
}

func detectColumns(header []string) columnMap {
	cols := columnMap{date: -1, desc: -1, amount: -1, payType: -1, category: -1}
	match := func(cell string, options []string) bool {
		h := strings.ToLower(strings.TrimSpace(cell))
		for _, opt := range options {
			if strings.Contains(h, opt) {
				return true
			}
		}
		return false
	}
	for i, cell := range header {
		switch {
		case cols.date < 0 && match(cell, dateHeaders):
			cols.date = i
		case cols.desc < 0 && match(cell, descHeaders):
			cols.desc = i
		case cols.amount < 0 && match(cell, amountHeaders):
			cols.amount = i
		case cols.payType < 0 && match(cell, typeHeaders):
			cols.payType = i
		case cols.category < 0 && match(cell, categoryHeaders):
			cols.category = i
		}
	}
	return cols
}

func (a *Adapter) parseCSV(doc *models.Document) ([]models.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(textutils.StripBOM(string(doc.Data))))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := detectColumns(records[0])
	if cols.date < 0 || cols.amount < 0 {
		return nil, nil
	}

	var results []parser.RowResult
	for _, record := range records[1:] {
		results = append(results, a.convertRecord(record, cols, doc))
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Indian bank CSV")
	return rows, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func (a *Adapter) convertRecord(record []string, cols columnMap, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDateIndian(cell(record, cols.date))
	if !ok {
		return parser.Reject("invalid date: " + cell(record, cols.date))
	}

	rawAmount := cell(record, cols.amount)
	amount := currencyutils.ParseAmount(rawAmount)
	if amount.IsZero() {
		return parser.Reject("no amount")
	}

	desc := cell(record, cols.desc)
	desc, inlineCategory := splitTrailingCategory(desc)
	if desc == "" {
		return parser.Reject("empty description")
	}

	payType := cell(record, cols.payType)
	if payType == "" {
		payType = detectPaymentType(desc)
	}

	category := cell(record, cols.category)
	if category == "" {
		category = inlineCategory
	}
	if category == "" {
		category = CategorizeByKeywords(desc, payType)
	}

	return a.buildRow(date, desc, amount, rawAmount, payType, category, doc)
}

func (a *Adapter) parseLines(doc *models.Document) ([]models.Transaction, error) {
	var results []parser.RowResult
	for _, line := range parser.DocumentLines(doc) {
		if a.SkipLine(line) {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		date, ok := dateutils.ParseDateIndian(m[1])
		if !ok {
			results = append(results, parser.Reject("invalid date: "+m[1]))
			continue
		}
		amount := currencyutils.ParseAmount(m[3])
		if amount.IsZero() {
			results = append(results, parser.Reject("no amount"))
			continue
		}
		desc, inlineCategory := splitTrailingCategory(strings.TrimSpace(m[2]))
		payType := detectPaymentType(desc)
		category := inlineCategory
		if category == "" {
			category = CategorizeByKeywords(desc, payType)
		}
		results = append(results, a.buildRow(date, desc, amount, m[3], payType, category, doc))
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Indian bank statement text")
	return rows, nil
}

func (a *Adapter) buildRow(date time.Time, desc string, amount decimal.Decimal, rawAmount, payType, category string, doc *models.Document) parser.RowResult {
	needCategory := ""
	if isCredit(rawAmount, desc) {
		// Income rows are kept, flagged by sign and need label.
		amount = amount.Abs().Neg()
		needCategory = models.NeedCategoryIncome
	} else {
		amount = amount.Abs()
	}

	notes := ""
	if payType != "" {
		notes = "Payment Type: " + payType
	}
	card := doc.DefaultCard
	if card == "" {
		card = cardName
	}

	return parser.Accept(models.Transaction{
		Date:         dateutils.ToISODate(date),
		Description:  desc,
		Amount:       amount,
		Currency:     "INR",
		Card:         card,
		Who:          doc.DefaultWho,
		Category:     category,
		NeedCategory: needCategory,
		Notes:        notes,
	})
}

func isCredit(rawAmount, desc string) bool {
	if strings.HasPrefix(strings.TrimSpace(rawAmount), "+") {
		return true
	}
	return textutils.ContainsAny(desc, creditMarkers)
}

func detectPaymentType(desc string) string {
	for _, pt := range PaymentTypes {
		if textutils.ContainsAny(desc, []string{pt}) {
			return pt
		}
	}
	return ""
}

// splitTrailingCategory strips a trailing "| Category" or "- Category"
// token that some export formats append to the description.
func splitTrailingCategory(desc string) (string, string) {
	for _, sep := range []string{" | ", " - "} {
		idx := strings.LastIndex(desc, sep)
		if idx < 0 {
			continue
		}
		tail := strings.TrimSpace(desc[idx+len(sep):])
		if tail != "" && len(strings.Fields(tail)) <= 2 && isKnownCategoryToken(tail) {
			return strings.TrimSpace(desc[:idx]), tail
		}
	}
	return desc, ""
}

func isKnownCategoryToken(s string) bool {
	lower := strings.ToLower(s)
	for _, c := range models.DefaultCategoryNames {
		if lower == c {
			return true
		}
	}
	for _, c := range keywordCategories {
		if strings.EqualFold(s, c.name) {
			return true
		}
	}
	return false
}

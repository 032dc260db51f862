// Package chaseparser parses Chase credit-card statements, both the CSV
// export format and text extracted from PDF statements.
package chaseparser

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/common"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/currencyutils"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/dateutils"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parser"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const cardName = "Chase Sapphire"

// chaseCSVRow maps the Chase activity export columns.
type chaseCSVRow struct {
	TransactionDate string `csv:"Transaction Date"`
	PostDate        string `csv:"Post Date"`
	Description     string `csv:"Description"`
	Category        string `csv:"Category"`
	Type            string `csv:"Type"`
	Amount          string `csv:"Amount"`
	Memo            string `csv:"Memo"`
}

// Ordered line patterns for text extracted from Chase PDF statements.
// First match wins per line.
var linePatterns = []*regexp.Regexp{
	// "12/05 12/06 AMAZON MKTPL*1A2B3 -12.34"
	regexp.MustCompile(`^(\d{2}/\d{2})\s+\d{2}/\d{2}\s+(.+?)\s+(-?\$?[\d,]+\.\d{2})$`),
	// "12/05 AMAZON MKTPL*1A2B3 12.34"
	regexp.MustCompile(`^(\d{2}/\d{2})\s+(.+?)\s+(-?\$?[\d,]+\.\d{2})$`),
}

// Adapter implements parser.StatementParser for Chase statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a Chase statement parser.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name implements parser.StatementParser.
func (a *Adapter) Name() string {
	return "chase"
}

// Parse dispatches on the declared file type. Payments and refunds are
// excluded from the expense rows: negative amounts in PDF statement
// text, positive amounts in the CSV export (which flips the sign of
// purchases).
func (a *Adapter) Parse(doc *models.Document) ([]models.Transaction, error) {
	if doc.FileType == models.FileTypeCSV {
		return a.parseCSV(doc)
	}
	return a.parseLines(doc)
}

func (a *Adapter) parseCSV(doc *models.Document) ([]models.Transaction, error) {
	csvRows, err := common.ReadCSV[chaseCSVRow](doc.Data)
	if err != nil {
		return nil, err
	}

	results := make([]parser.RowResult, 0, len(csvRows))
	for _, row := range csvRows {
		results = append(results, a.convertCSVRow(row, doc))
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Chase CSV")
	return rows, nil
}

func (a *Adapter) convertCSVRow(row chaseCSVRow, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(row.TransactionDate)
	if !ok {
		return parser.Reject("invalid date: " + row.TransactionDate)
	}
	// Chase activity exports mark purchases with negative amounts and
	// payments or refunds with positive ones.
	amount := currencyutils.ParseAmount(row.Amount)
	if !amount.IsNegative() {
		return parser.Reject("payment or credit row")
	}
	amount = amount.Neg()
	desc := strings.TrimSpace(row.Description)
	if desc == "" {
		return parser.Reject("empty description")
	}

	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: desc,
		Amount:      amount,
		Currency:    "USD",
		Card:        card(doc),
		Who:         doc.DefaultWho,
		Category:    models.CategoryUncategorized,
	})
}

func (a *Adapter) parseLines(doc *models.Document) ([]models.Transaction, error) {
	var results []parser.RowResult
	for _, line := range parser.DocumentLines(doc) {
		if a.SkipLine(line) {
			continue
		}
		for _, re := range linePatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			results = append(results, a.convertLine(m[1], m[2], m[3], doc))
			break
		}
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Chase PDF text")
	return rows, nil
}

func (a *Adapter) convertLine(dateStr, desc, amountStr string, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(dateStr)
	if !ok {
		return parser.Reject("invalid date: " + dateStr)
	}
	amount := currencyutils.ParseAmount(amountStr)
	if !amount.IsPositive() {
		return parser.Reject("payment or credit line")
	}

	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: strings.TrimSpace(desc),
		Amount:      amount,
		Currency:    "USD",
		Card:        card(doc),
		Who:         doc.DefaultWho,
		Category:    models.CategoryUncategorized,
	})
}

func card(doc *models.Document) string {
	if doc.DefaultCard != "" {
		return doc.DefaultCard
	}
	return cardName
}

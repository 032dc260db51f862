// Package amexparser parses American Express statements: the
// three-column CSV export and month-name dated lines from PDF text.
package amexparser

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

const cardName = "American Express"

// amexCSVRow maps the Amex activity export columns.
type amexCSVRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// Ordered line patterns. Amex statement text carries a transaction date
// and a posting date in month-name form before the merchant.
var linePatterns = []*regexp.Regexp{
	// "Jul 15 Jul 16 STARBUCKS #123 NEW YORK $23.45"
	regexp.MustCompile(`^([A-Za-z]{3} \d{1,2})\s+[A-Za-z]{3} \d{1,2}\s+(.+?)\s*\$(-?[\d,]+\.\d{2})$`),
	// "Jul 15 STARBUCKS #123 NEW YORK $23.45"
	regexp.MustCompile(`^([A-Za-z]{3} \d{1,2})\s+(.+?)\s*\$(-?[\d,]+\.\d{2})$`),
}

// Adapter implements parser.StatementParser for Amex statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates an Amex statement parser.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name implements parser.StatementParser.
func (a *Adapter) Name() string {
	return "amex"
}

// Parse dispatches on the declared file type. Negative amounts are
// payments or credits and are excluded.
func (a *Adapter) Parse(doc *models.Document) ([]models.Transaction, error) {
	if doc.FileType == models.FileTypeCSV {
		return a.parseCSV(doc)
	}
	return a.parseLines(doc)
}

func (a *Adapter) parseCSV(doc *models.Document) ([]models.Transaction, error) {
	csvRows, err := common.ReadCSV[amexCSVRow](doc.Data)
	if err != nil {
		return nil, err
	}

	results := make([]parser.RowResult, 0, len(csvRows))
	for _, row := range csvRows {
		results = append(results, a.convert(row.Date, row.Description, row.Amount, doc))
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Amex CSV")
	return rows, nil
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
			results = append(results, a.convert(m[1], m[2], m[3], doc))
			break
		}
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Amex PDF text")
	return rows, nil
}

func (a *Adapter) convert(dateStr, desc, amountStr string, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(dateStr)
	if !ok {
		return parser.Reject("invalid date: " + dateStr)
	}
	amount := currencyutils.ParseAmount(amountStr)
	if !amount.IsPositive() {
		return parser.Reject("payment or credit row")
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return parser.Reject("empty description")
	}

	card := doc.DefaultCard
	if card == "" {
		card = cardName
	}
	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: desc,
		Amount:      amount,
		Currency:    "USD",
		Card:        card,
		Who:         doc.DefaultWho,
		Category:    models.CategoryUncategorized,
	})
}

// Package discoverparser parses Discover card statements. Discover PDF
// activity lines embed a category word between the merchant and the
// amount ("06/24 BIG BAZAAR PLAINSBORO NJ Supermarkets $59.35"); that
// token is stripped from the stored description.
package discoverparser

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

const cardName = "Discover"

// discoverCSVRow maps the Discover activity export columns.
type discoverCSVRow struct {
	TransDate   string `csv:"Trans. Date"`
	PostDate    string `csv:"Post Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
}

// discoverCategories is the category vocabulary Discover prints inline
// on statement lines. Matching is what allows the token to be split off
// the merchant text.
var discoverCategories = []string{
	"Supermarkets",
	"Restaurants",
	"Merchandise",
	"Gasoline",
	"Services",
	"Travel/ Entertainment",
	"Travel/Entertainment",
	"Department Stores",
	"Home Improvement",
	"Medical Services",
	"Education",
	"Government Services",
	"Payments and Credits",
	"Awards and Rebate Credits",
}

var categoryAlternation = buildCategoryAlternation()

func buildCategoryAlternation() string {
	quoted := make([]string, 0, len(discoverCategories))
	for _, c := range discoverCategories {
		quoted = append(quoted, regexp.QuoteMeta(c))
	}
	return strings.Join(quoted, "|")
}

// Ordered line patterns; the category-bearing form is tried first.
var linePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{2}/\d{2})(?:\s+\d{2}/\d{2})?\s+(.+?)\s+(` + categoryAlternation + `)\s+(-?\$?-?[\d,]+\.\d{2})$`),
	regexp.MustCompile(`^(\d{2}/\d{2})(?:\s+\d{2}/\d{2})?\s+(.+?)\s+()(-?\$?-?[\d,]+\.\d{2})$`),
}

// Adapter implements parser.StatementParser for Discover statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a Discover statement parser.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name implements parser.StatementParser.
func (a *Adapter) Name() string {
	return "discover"
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
	csvRows, err := common.ReadCSV[discoverCSVRow](doc.Data)
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
	}).Debug("Parsed Discover CSV")
	return rows, nil
}

func (a *Adapter) convertCSVRow(row discoverCSVRow, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(row.TransDate)
	if !ok {
		return parser.Reject("invalid date: " + row.TransDate)
	}
	amount := currencyutils.ParseAmount(row.Amount)
	if !amount.IsPositive() {
		return parser.Reject("payment or credit row")
	}
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
			results = append(results, a.convertLine(m[1], m[2], m[4], doc))
			break
		}
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Discover PDF text")
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

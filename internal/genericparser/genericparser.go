// Package genericparser is the universal fallback strategy. It tries,
// in order: detected tables (header row located by keyword, columns
// mapped through a synonym table, rows read positionally), a line regex
// pass over extracted text, and for CSV input a header-mapped or
// positional read. Every other strategy in the dispatcher chain falls
// back to this one.
package genericparser

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

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

// fieldSynonyms maps header cell text to canonical field names. Matching
// is by substring containment on the lowercased header.
var fieldSynonyms = map[string][]string{
	"date":        {"transaction date", "trans date", "posting date", "post date", "posted date", "date"},
	"description": {"transaction description", "description", "details", "merchant", "narration", "particulars"},
	"amount":      {"transaction amount", "amount", "debit", "credit", "amt"},
	"category":    {"category", "type"},
	"card":        {"card number", "card", "account"},
	"who":         {"who", "spender", "user"},
	"notes":       {"notes", "memo", "remarks"},
}

var headerKeywordRe = regexp.MustCompile(`(?i)date|desc|amount|debit|credit`)

// Ordered line patterns for the regex fallback.
var linePatterns = []*regexp.Regexp{
	// "Jun 24 Jun 25 MERCHANT NAME $59.35"
	regexp.MustCompile(`^([A-Za-z]{3} \d{1,2})\s+[A-Za-z]{3} \d{1,2}\s+(.+?)\s*\$(-?[\d,]+\.\d{2})$`),
	// "06/24/2025 MERCHANT NAME 59.35"
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})\s+(.+?)\s+(-?\$?[\d,]+\.\d{2})$`),
	// "2025-06-24 MERCHANT NAME 59.35"
	regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(.+?)\s+(-?\$?[\d,]+\.\d{2})$`),
}

// Adapter implements parser.StatementParser as the generic fallback.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates the generic statement parser.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name implements parser.StatementParser.
func (a *Adapter) Name() string {
	return "generic"
}

// Parse tries the table strategy first and falls back to line regexes;
// CSV input goes through the header-mapped CSV path.
func (a *Adapter) Parse(doc *models.Document) ([]models.Transaction, error) {
	if doc.FileType == models.FileTypeCSV {
		return a.parseCSV(doc)
	}

	rows := a.parseTables(doc)
	if len(rows) == 0 {
		log.Debug("No table rows found, falling back to line extraction")
		rows = a.parseLines(doc)
	}
	return rows, nil
}

func (a *Adapter) parseTables(doc *models.Document) []models.Transaction {
	var results []parser.RowResult
	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			results = append(results, a.parseTable(table, doc)...)
		}
	}
	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed tables")
	return rows
}

// parseTable locates a header row within the first three rows and reads
// the remaining rows positionally through the discovered column map.
func (a *Adapter) parseTable(table models.Table, doc *models.Document) []parser.RowResult {
	if len(table) < 2 {
		return nil
	}

	headerIdx := -1
	limit := 3
	if len(table) < limit {
		limit = len(table)
	}
	for i := 0; i < limit; i++ {
		for _, cellText := range table[i] {
			if headerKeywordRe.MatchString(cellText) {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	cols := mapHeaders(table[headerIdx])
	if cols["date"] < 0 || cols["description"] < 0 || cols["amount"] < 0 {
		return nil
	}

	var results []parser.RowResult
	for _, row := range table[headerIdx+1:] {
		if emptyRow(row) {
			continue
		}
		results = append(results, a.convertTableRow(row, cols, doc))
	}
	return results
}

func mapHeaders(header []string) map[string]int {
	cols := map[string]int{
		"date": -1, "description": -1, "amount": -1,
		"category": -1, "card": -1, "who": -1, "notes": -1,
	}
	for i, cellText := range header {
		h := strings.ToLower(strings.TrimSpace(cellText))
		for field, options := range fieldSynonyms {
			if cols[field] >= 0 {
				continue
			}
			for _, opt := range options {
				if strings.Contains(h, opt) {
					cols[field] = i
					break
				}
			}
		}
	}
	return cols
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (a *Adapter) convertTableRow(row []string, cols map[string]int, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(cell(row, cols["date"]))
	if !ok {
		return parser.Reject("invalid date: " + cell(row, cols["date"]))
	}
	amount := currencyutils.ParseAmount(cell(row, cols["amount"]))
	if !amount.IsPositive() {
		return parser.Reject("non-positive amount")
	}
	desc := cell(row, cols["description"])
	if desc == "" {
		return parser.Reject("empty description")
	}

	category := cell(row, cols["category"])
	if category == "" {
		category = models.CategoryUncategorized
	}
	card := cell(row, cols["card"])
	if card == "" {
		card = doc.DefaultCard
	}
	who := cell(row, cols["who"])
	if who == "" {
		who = doc.DefaultWho
	}

	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: desc,
		Amount:      amount,
		Currency:    currencyutils.DetectCurrency(cell(row, cols["amount"])),
		Card:        card,
		Who:         who,
		Category:    category,
		Notes:       cell(row, cols["notes"]),
	})
}

func (a *Adapter) parseLines(doc *models.Document) []models.Transaction {
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
	}).Debug("Parsed lines with regex fallback")
	return rows
}

func (a *Adapter) convertLine(dateStr, desc, amountStr string, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(dateStr)
	if !ok {
		return parser.Reject("invalid date: " + dateStr)
	}
	amount := currencyutils.ParseAmount(amountStr)
	if !amount.IsPositive() {
		return parser.Reject("non-positive amount")
	}

	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: strings.TrimSpace(desc),
		Amount:      amount,
		Currency:    "USD",
		Card:        doc.DefaultCard,
		Who:         doc.DefaultWho,
		Category:    models.CategoryUncategorized,
	})
}

// Package venturexparser parses Capital One Venture X family statements.
// The statement text is segmented into per-cardholder sections headed
// "NAME #1234: Transactions" (or Payments/Credits); the active section
// name becomes the spender on each row, and rows under a Payments or
// Credits section are excluded from spending entirely.
package venturexparser

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

const cardName = "Venture X"

var sectionRe = regexp.MustCompile(`^([A-Z][A-Za-z .'-]*?)\s+#\d+:\s+(Transactions|Payments|Credits)\s*$`)

// Ordered transaction line patterns within a section.
var linePatterns = []*regexp.Regexp{
	// "Jun 24 Jun 25 MERCHANT CITY $123.45"
	regexp.MustCompile(`^([A-Za-z]{3} \d{1,2})\s+[A-Za-z]{3} \d{1,2}\s+(.+?)\s+(-?\$?-?[\d,]+\.\d{2})$`),
	// "06/24 MERCHANT CITY $123.45"
	regexp.MustCompile(`^(\d{2}/\d{2})\s+(.+?)\s+(-?\$?-?[\d,]+\.\d{2})$`),
}

// Adapter implements parser.StatementParser for Venture X statements.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a Venture X statement parser.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name implements parser.StatementParser.
func (a *Adapter) Name() string {
	return "venturex"
}

// Parse scans the extracted lines, tracking the active cardholder
// section. Rows are excluded both by section (Payments, Credits) and by
// sign, so a misfiled negative line can never enter the expense set.
func (a *Adapter) Parse(doc *models.Document) ([]models.Transaction, error) {
	var results []parser.RowResult
	holder := ""
	section := ""

	for _, line := range parser.DocumentLines(doc) {
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			holder = strings.TrimSpace(m[1])
			section = m[2]
			continue
		}
		if section == "Payments" || section == "Credits" {
			continue
		}
		if a.SkipLine(line) {
			continue
		}
		for _, re := range linePatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			results = append(results, a.convert(m[1], m[2], m[3], holder, doc))
			break
		}
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
	}).Debug("Parsed Venture X statement")
	return rows, nil
}

func (a *Adapter) convert(dateStr, desc, amountStr, holder string, doc *models.Document) parser.RowResult {
	date, ok := dateutils.ParseDate(dateStr)
	if !ok {
		return parser.Reject("invalid date: " + dateStr)
	}
	amount := currencyutils.ParseAmount(amountStr)
	if !amount.IsPositive() {
		return parser.Reject("payment or credit line")
	}

	who := holder
	if who == "" {
		who = doc.DefaultWho
	}
	card := doc.DefaultCard
	if card == "" {
		card = cardName
	}
	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: strings.TrimSpace(desc),
		Amount:      amount,
		Currency:    "USD",
		Card:        card,
		Who:         who,
		Category:    models.CategoryUncategorized,
	})
}

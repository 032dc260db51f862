package genericparser

import (
	"encoding/csv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/currencyutils"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/dateutils"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/parser"
	"github.com/xFahrenheit/mimis-expense-tracker/internal/textutils"
)

// parseCSV reads a generic CSV statement. When the header row maps to
// known fields the columns are read through the synonym table; otherwise
// the positional convention date,description,amount is assumed.
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

	cols := mapHeaders(records[0])
	mapped := cols["date"] >= 0 && cols["amount"] >= 0

	var results []parser.RowResult
	for _, record := range records[1:] {
		if emptyRow(record) {
			continue
		}
		if mapped {
			results = append(results, a.convertTableRow(record, cols, doc))
			continue
		}
		results = append(results, a.convertPositional(record, doc))
	}

	rows, dropped := parser.Collect(results)
	log.WithFields(logrus.Fields{
		"count":   len(rows),
		"dropped": dropped,
		"mapped":  mapped,
	}).Debug("Parsed generic CSV")
	return rows, nil
}

// convertPositional reads the date,description,amount convention, with
// the amount falling back to the fourth column when the third is not
// numeric (debit/credit split exports).
func (a *Adapter) convertPositional(record []string, doc *models.Document) parser.RowResult {
	if len(record) < 3 {
		return parser.Reject("too few columns")
	}

	date, ok := dateutils.ParseDate(strings.TrimSpace(record[0]))
	if !ok {
		return parser.Reject("invalid date: " + record[0])
	}

	amount := currencyutils.ParseAmount(record[2])
	if amount.IsZero() && len(record) > 3 {
		amount = currencyutils.ParseAmount(record[3])
	}
	amount = amount.Abs()
	if !amount.IsPositive() {
		return parser.Reject("no amount")
	}

	desc := strings.TrimSpace(record[1])
	if desc == "" {
		return parser.Reject("empty description")
	}

	return parser.Accept(models.Transaction{
		Date:        dateutils.ToISODate(date),
		Description: desc,
		Amount:      amount,
		Currency:    currencyutils.DetectCurrency(strings.Join(record, " ")),
		Card:        doc.DefaultCard,
		Who:         doc.DefaultWho,
		Category:    models.CategoryUncategorized,
	})
}

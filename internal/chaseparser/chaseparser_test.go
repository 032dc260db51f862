package chaseparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

func TestParseCSV(t *testing.T) {
	// Chase exports flip the sign: purchases are negative, payments and
	// refunds positive.
	csvData := `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
06/24/2025,06/25/2025,STARBUCKS STORE 12345,Food & Drink,Sale,-4.50,
06/25/2025,06/26/2025,AMAZON MKTPL*1A2B3,Shopping,Sale,-23.99,
06/26/2025,06/27/2025,Payment Thank You - Web,,Payment,500.00,
06/27/2025,06/28/2025,AMAZON MKTPL*1A2B3,Shopping,Return,23.99,
bad date,06/27/2025,SOMETHING,,,-4.00,`

	a := NewAdapter()
	doc := &models.Document{
		Name:     "chase.csv",
		Data:     []byte(csvData),
		FileType: models.FileTypeCSV,
	}

	rows, err := a.Parse(doc)
	require.NoError(t, err)
	// Payment, refund and bad-date rows are dropped, purchases kept as
	// positive magnitudes.
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-06-24", rows[0].Date)
	assert.Equal(t, "STARBUCKS STORE 12345", rows[0].Description)
	assert.Equal(t, "4.5", rows[0].Amount.String())
	assert.Equal(t, "USD", rows[0].Currency)
	assert.Equal(t, "Chase Sapphire", rows[0].Card)
	assert.Equal(t, models.CategoryUncategorized, rows[0].Category)
	assert.Equal(t, "23.99", rows[1].Amount.String())
}

func TestParsePDFLines(t *testing.T) {
	year := time.Now().Year()
	text := `ACCOUNT SUMMARY
Previous Balance $1,204.33
12/05 12/06 AMAZON MKTPL*1A2B3 12.34
12/07 UBER TRIP HELP.UBER.COM 18.20
12/08 Payment Thank You - Web -500.00
Minimum Payment Due: $35.00`

	a := NewAdapter()
	doc := &models.Document{
		Name:       "chase.pdf",
		FileType:   models.FileTypePDF,
		Pages:      []models.Page{{Text: text}},
		DefaultWho: "sam",
	}

	rows, err := a.Parse(doc)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, fmt.Sprintf("%d-12-05", year), rows[0].Date)
	assert.Equal(t, "AMAZON MKTPL*1A2B3", rows[0].Description)
	assert.Equal(t, "12.34", rows[0].Amount.String())
	assert.Equal(t, "sam", rows[0].Who)

	assert.Equal(t, "UBER TRIP HELP.UBER.COM", rows[1].Description)
}

func TestDefaultCardOverride(t *testing.T) {
	csvData := `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
06/24/2025,06/25/2025,STARBUCKS,Food,Sale,-4.50,`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		Data:        []byte(csvData),
		FileType:    models.FileTypeCSV,
		DefaultCard: "Freedom Unlimited",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Freedom Unlimited", rows[0].Card)
}

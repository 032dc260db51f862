package genericparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

func TestParseTables(t *testing.T) {
	table := models.Table{
		{"Statement Period: June 2025"},
		{"Date", "Description", "Amount", "Category"},
		{"06/24/2025", "BIG BAZAAR PLAINSBORO", "59.35", "Supermarkets"},
		{"06/25/2025", "NETFLIX.COM", "15.49", ""},
		{"", "", "", ""},
		{"bad", "NO DATE ROW", "10.00", ""},
	}

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Tables: []models.Table{table}}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-06-24", rows[0].Date)
	assert.Equal(t, "BIG BAZAAR PLAINSBORO", rows[0].Description)
	assert.Equal(t, "59.35", rows[0].Amount.String())
	// Inline table categories are preserved.
	assert.Equal(t, "Supermarkets", rows[0].Category)
	assert.Equal(t, models.CategoryUncategorized, rows[1].Category)
}

func TestParseLinesFallback(t *testing.T) {
	text := `SOME BANK STATEMENT
06/24/2025 LOCAL COFFEE ROASTERS 4.75
2025-06-25 HARDWARE STORE 23.10
06/26/2025 REFUND -10.00`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Text: text}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "LOCAL COFFEE ROASTERS", rows[0].Description)
	assert.Equal(t, "HARDWARE STORE", rows[1].Description)
	assert.Equal(t, "23.1", rows[1].Amount.String())
}

func TestParseCSVHeaderMapped(t *testing.T) {
	csvData := `Posting Date,Merchant,Amount
06/24/2025,WEGMANS PRINCETON,88.12
06/25/2025,SHELL OIL,41.00`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		Data:     []byte(csvData),
		FileType: models.FileTypeCSV,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "WEGMANS PRINCETON", rows[0].Description)
	assert.Equal(t, "88.12", rows[0].Amount.String())
}

func TestParseCSVPositional(t *testing.T) {
	// No recognizable header: date,description,amount convention, with
	// the fourth column carrying the amount for debit/credit splits.
	csvData := `x,y,z,w
06/24/2025,WEGMANS PRINCETON,,88.12
06/25/2025,SHELL OIL,41.00,`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		Data:     []byte(csvData),
		FileType: models.FileTypeCSV,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "88.12", rows[0].Amount.String())
	assert.Equal(t, "41", rows[1].Amount.String())
}

func TestMapHeaders(t *testing.T) {
	cols := mapHeaders([]string{"Trans Date", "Transaction Description", "Debit", "Memo"})
	assert.Equal(t, 0, cols["date"])
	assert.Equal(t, 1, cols["description"])
	assert.Equal(t, 2, cols["amount"])
	assert.Equal(t, 3, cols["notes"])
	assert.Equal(t, -1, cols["who"])
}

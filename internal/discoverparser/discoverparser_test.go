package discoverparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

func TestParsePDFLinesStripsInlineCategory(t *testing.T) {
	year := time.Now().Year()
	text := `TRANSACTIONS
06/24 BIG BAZAAR PLAINSBORO NJ Supermarkets $59.35
06/25 AMC THEATERS 0123 Merchandise $24.00
06/26 INTERNET PAYMENT - THANK YOU Payments and Credits -$150.00`

	a := NewAdapter()
	doc := &models.Document{
		Name:     "discover.pdf",
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Text: text}},
	}

	rows, err := a.Parse(doc)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The inline category token is stripped from the description.
	assert.Equal(t, fmt.Sprintf("%d-06-24", year), rows[0].Date)
	assert.Equal(t, "BIG BAZAAR PLAINSBORO NJ", rows[0].Description)
	assert.Equal(t, "59.35", rows[0].Amount.String())
	assert.Equal(t, "Discover", rows[0].Card)

	assert.Equal(t, "AMC THEATERS 0123", rows[1].Description)
}

func TestParsePDFLinesWithoutCategory(t *testing.T) {
	text := `06/24 06/25 SOME LOCAL SHOP $10.00`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Text: text}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SOME LOCAL SHOP", rows[0].Description)
	assert.Equal(t, "10", rows[0].Amount.String())
}

func TestParseCSV(t *testing.T) {
	csvData := `Trans. Date,Post Date,Description,Amount,Category
06/24/2025,06/25/2025,BIG BAZAAR PLAINSBORO NJ,59.35,Supermarkets
06/26/2025,06/27/2025,INTERNET PAYMENT - THANK YOU,-150.00,Payments and Credits`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		Data:     []byte(csvData),
		FileType: models.FileTypeCSV,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-06-24", rows[0].Date)
	assert.Equal(t, "BIG BAZAAR PLAINSBORO NJ", rows[0].Description)
	assert.Equal(t, models.CategoryUncategorized, rows[0].Category)
}

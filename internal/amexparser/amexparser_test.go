package amexparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

func TestParseCSV(t *testing.T) {
	csvData := `Date,Description,Amount
07/15/2025,STARBUCKS #123 NEW YORK,23.45
07/16/2025,AUTOPAY PAYMENT RECEIVED,-250.00
07/17/2025,DELTA AIR LINES ATLANTA,412.80`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		Data:     []byte(csvData),
		FileType: models.FileTypeCSV,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-07-15", rows[0].Date)
	assert.Equal(t, "STARBUCKS #123 NEW YORK", rows[0].Description)
	assert.Equal(t, "23.45", rows[0].Amount.String())
	assert.Equal(t, "American Express", rows[0].Card)
	assert.Equal(t, "412.8", rows[1].Amount.String())
}

func TestParsePDFLines(t *testing.T) {
	year := time.Now().Year()
	text := `Account Summary
Jul 15 Jul 16 STARBUCKS #123 NEW YORK $23.45
Jul 17 WHOLE FOODS MKT #10236 $103.27
Jul 18 AUTOPAY PAYMENT RECEIVED $-250.00`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Text: text}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, fmt.Sprintf("%d-07-15", year), rows[0].Date)
	assert.Equal(t, "STARBUCKS #123 NEW YORK", rows[0].Description)
	assert.Equal(t, "WHOLE FOODS MKT #10236", rows[1].Description)
	assert.Equal(t, "103.27", rows[1].Amount.String())
}

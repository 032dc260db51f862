package venturexparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

func TestParseSections(t *testing.T) {
	year := time.Now().Year()
	text := `ALEX MORGAN #1234: Payments
Jun 20 Jun 21 CAPITAL ONE MOBILE PYMT $500.00
ALEX MORGAN #1234: Transactions
Jun 24 Jun 25 WEGMANS PRINCETON NJ $88.12
Jun 26 Jun 27 NETFLIX.COM $15.49
JORDAN MORGAN #5678: Transactions
Jun 25 Jun 26 SHELL OIL 5771 $41.00
JORDAN MORGAN #5678: Credits
Jun 28 Jun 29 STATEMENT CREDIT $20.00`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Text: text}},
	})
	require.NoError(t, err)
	// Payments and Credits sections contribute nothing.
	require.Len(t, rows, 3)

	assert.Equal(t, fmt.Sprintf("%d-06-24", year), rows[0].Date)
	assert.Equal(t, "WEGMANS PRINCETON NJ", rows[0].Description)
	assert.Equal(t, "ALEX MORGAN", rows[0].Who)
	assert.Equal(t, "Venture X", rows[0].Card)

	assert.Equal(t, "NETFLIX.COM", rows[1].Description)
	assert.Equal(t, "ALEX MORGAN", rows[1].Who)

	// Section switches carry the new cardholder onto following rows.
	assert.Equal(t, "SHELL OIL 5771", rows[2].Description)
	assert.Equal(t, "JORDAN MORGAN", rows[2].Who)
}

func TestNegativeLineRejectedEvenInTransactions(t *testing.T) {
	text := `ALEX MORGAN #1234: Transactions
Jun 24 Jun 25 REFUND MERCHANT -$12.00`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType: models.FileTypePDF,
		Pages:    []models.Page{{Text: text}},
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNoSectionFallsBackToDefaultWho(t *testing.T) {
	text := `06/24 LOCAL DINER $18.50`

	a := NewAdapter()
	rows, err := a.Parse(&models.Document{
		FileType:   models.FileTypePDF,
		Pages:      []models.Page{{Text: text}},
		DefaultWho: "sam",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "sam", rows[0].Who)
}

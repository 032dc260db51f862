package parser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/xFahrenheit/mimis-expense-tracker/internal/models"
)

type stubParser struct {
	name  string
	rows  []models.Transaction
	err   error
	panic bool
}

func (s *stubParser) Name() string { return s.name }

func (s *stubParser) Parse(doc *models.Document) ([]models.Transaction, error) {
	if s.panic {
		panic("boom")
	}
	return s.rows, s.err
}

func oneRow() []models.Transaction {
	return []models.Transaction{{
		Date:        "2025-06-24",
		Description: "STARBUCKS",
		Amount:      decimal.NewFromFloat(4.50),
	}}
}

func TestRunStatuses(t *testing.T) {
	doc := &models.Document{}

	out := Run(&stubParser{name: "a", rows: oneRow()}, doc)
	assert.Equal(t, StatusParsed, out.Status)
	assert.Equal(t, "a", out.Strategy)
	assert.Len(t, out.Rows, 1)

	out = Run(&stubParser{name: "b"}, doc)
	assert.Equal(t, StatusEmpty, out.Status)

	out = Run(&stubParser{name: "c", err: errors.New("bad file")}, doc)
	assert.Equal(t, StatusFailed, out.Status)
	assert.Error(t, out.Err)
}

func TestRunRecoversPanic(t *testing.T) {
	out := Run(&stubParser{name: "p", panic: true}, &models.Document{})
	assert.Equal(t, StatusFailed, out.Status)
	assert.Error(t, out.Err)
	assert.Nil(t, out.Rows)
}

func TestRunChainFirstSuccessWins(t *testing.T) {
	doc := &models.Document{}

	out := RunChain([]StatementParser{
		&stubParser{name: "empty"},
		&stubParser{name: "winner", rows: oneRow()},
		&stubParser{name: "never", panic: true},
	}, doc)
	assert.Equal(t, StatusParsed, out.Status)
	assert.Equal(t, "winner", out.Strategy)
}

func TestRunChainAllFail(t *testing.T) {
	out := RunChain([]StatementParser{
		&stubParser{name: "a", err: errors.New("nope")},
		&stubParser{name: "b"},
	}, &models.Document{})
	assert.Equal(t, StatusEmpty, out.Status)
	assert.Equal(t, "b", out.Strategy)

	out = RunChain(nil, &models.Document{})
	assert.Equal(t, StatusEmpty, out.Status)
}

func TestCollect(t *testing.T) {
	rows, dropped := Collect([]RowResult{
		Accept(models.Transaction{Description: "ok"}),
		Reject("invalid date"),
		Accept(models.Transaction{Description: "ok2"}),
		Reject("no amount"),
	})
	assert.Len(t, rows, 2)
	assert.Equal(t, 2, dropped)
}

func TestParseBankType(t *testing.T) {
	tests := []struct {
		input string
		want  BankType
		ok    bool
	}{
		{"chase", BankChase, true},
		{"Chase Sapphire", BankChase, true},
		{"AMERICAN EXPRESS", BankAmex, true},
		{" venture x ", BankVentureX, true},
		{"sbi", BankIndian, true},
		{"generic", BankGeneric, true},
		{"", BankGeneric, false},
		{"monzo", BankGeneric, false},
	}
	for _, tt := range tests {
		got, ok := ParseBankType(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestSkipLine(t *testing.T) {
	var b BaseParser

	assert.True(t, b.SkipLine("  ---- "))
	assert.True(t, b.SkipLine("ab"))
	assert.True(t, b.SkipLine("Previous Balance $1,234.00"))
	assert.True(t, b.SkipLine("Minimum Payment Due: $35.00"))
	assert.False(t, b.SkipLine("06/24 BIG BAZAAR PLAINSBORO NJ $59.35"))
}

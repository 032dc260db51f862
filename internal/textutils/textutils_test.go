package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "starbucks store 12345", NormalizeDescription("  STARBUCKS STORE 12345 "))
	assert.Equal(t, "", NormalizeDescription("   "))
}

func TestNormalizeMerchant(t *testing.T) {
	assert.Equal(t, "traderjoes123", NormalizeMerchant("Trader Joe's #123"))
	assert.Equal(t, "stopshop", NormalizeMerchant("Stop & Shop"))
	assert.Contains(t, NormalizeMerchant("WHOLE FOODS MKT #10236"), NormalizeMerchant("whole foods"))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces("  a \t b \n c "))
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("first\n\n  second  \n\t\nthird\n")
	assert.Equal(t, []string{"first", "second", "third"}, lines)
	assert.Empty(t, SplitLines("\n \n"))
}

func TestStripBOM(t *testing.T) {
	assert.Equal(t, "Date,Amount", StripBOM("\ufeffDate,Amount"))
	assert.Equal(t, "Date,Amount", StripBOM("Date,Amount"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("AMC THEATERS 0123", []string{"theater", "cinema"}))
	assert.False(t, ContainsAny("grocery store", []string{"theater", "cinema"}))
	assert.False(t, ContainsAny("anything", nil))
}

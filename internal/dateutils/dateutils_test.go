package dateutils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"us slash", "06/24/2025", "2025-06-24", true},
		{"us slash single digits", "6/4/2025", "2025-06-04", true},
		{"iso", "2025-06-24", "2025-06-24", true},
		{"month name", "Jan 5, 2025", "2025-01-05", true},
		{"month name no comma", "Jan 5 2025", "2025-01-05", true},
		{"full month name", "January 5, 2025", "2025-01-05", true},
		{"day first month name", "19 Jul, 2025", "2025-07-19", true},
		{"day first numeric when us fails", "25/12/2024", "2024-12-25", true},
		{"quoted", `"06/24/2025"`, "2025-06-24", true},
		{"garbage", "not a date", "", false},
		{"empty", "", "", false},
		{"impossible", "13/32/2025", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, ToISODate(got))
			}
		})
	}
}

func TestParseDateYearless(t *testing.T) {
	year := strconv.Itoa(time.Now().Year())

	got, ok := ParseDate("06/24")
	assert.True(t, ok)
	assert.Equal(t, year+"-06-24", ToISODate(got))

	got, ok = ParseDate("Dec 5")
	assert.True(t, ok)
	assert.Equal(t, year+"-12-05", ToISODate(got))

	// 24 cannot be a month, so a US reading must fail.
	_, ok = ParseDate("24/13")
	assert.False(t, ok)
}

func TestParseDateIndian(t *testing.T) {
	// The same ambiguous numeric date reads day-first for Indian
	// statements.
	got, ok := ParseDateIndian("05/06/2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-06-05", ToISODate(got))

	got, ok = ParseDateIndian("19 Jul, 2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-07-19", ToISODate(got))

	got, ok = ParseDateIndian("05-06-2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-06-05", ToISODate(got))
}

func TestTwoDigitYearPivot(t *testing.T) {
	got, ok := ParseDate("06/24/25")
	assert.True(t, ok)
	assert.Equal(t, "2025-06-24", ToISODate(got))

	got, ok = ParseDate("06/24/99")
	assert.True(t, ok)
	assert.Equal(t, "1999-06-24", ToISODate(got))

	got, ok = ParseDate("06/24/49")
	assert.True(t, ok)
	assert.Equal(t, "2049-06-24", ToISODate(got))
}

func TestParseToISO(t *testing.T) {
	assert.Equal(t, "2025-06-24", ParseToISO("06/24/2025"))
	assert.Equal(t, "", ParseToISO("nonsense"))
}

// Package dateutils implements locale-aware parsing of the date formats
// found on bank and credit-card statements. Parsing is fail-open: an
// unrecognized date returns ok=false so the caller can drop the row
// instead of aborting the whole statement.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the canonical rendering for all stored dates.
const DateLayoutISO = "2006-01-02"

// usFormats are tried in order for statements from US issuers. Ambiguous
// two-field numeric dates are read as MM/DD; there is no attempt at
// deeper disambiguation.
var usFormats = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"2006-01-02",
	"01-02-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 Jan, 2006",
	"2 Jan 2006",
	// Day-first numeric forms only match once the US readings above
	// have failed (e.g. "25/12/2024").
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
}

// indianFormats prefer DD/MM for the same ambiguous numeric dates, plus
// the regional "19 Jul, 2025" day-first month-name form.
var indianFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/06",
	"2/1/06",
	"02-01-06",
	"2006-01-02",
	"2006/01/02",
	"2 Jan, 2006",
	"2 Jan 2006",
	"2 January, 2006",
	"2 January 2006",
}

var monthDayRe = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{1,2})$`)
var numericMDRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)

// ParseDate parses a date string from a US-issuer statement. Returns the
// parsed date and true, or the zero time and false when no accepted
// format matches.
func ParseDate(s string) (time.Time, bool) {
	return parseWith(s, usFormats, false)
}

// ParseDateIndian parses a date string assuming the Indian statement
// convention of DD/MM for ambiguous numeric dates.
func ParseDateIndian(s string) (time.Time, bool) {
	return parseWith(s, indianFormats, true)
}

func parseWith(s string, formats []string, dayFirst bool) (time.Time, bool) {
	s = clean(s)
	if s == "" {
		return time.Time{}, false
	}

	// Year-less forms assume the current year.
	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		year := time.Now().Year()
		for _, layout := range []string{"Jan 2 2006", "January 2 2006"} {
			if t, err := time.Parse(layout, s+" "+strconv.Itoa(year)); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	if m := numericMDRe.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		month, day := a, b
		if dayFirst {
			month, day = b, a
		}
		t := time.Date(time.Now().Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range components, so verify.
		if int(t.Month()) != month || t.Day() != day {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range formats {
		if t, err := time.Parse(layout, s); err == nil {
			return fixCentury(t, layout), true
		}
	}
	return time.Time{}, false
}

// fixCentury applies the two-digit-year pivot: <50 is 20xx, else 19xx.
// time.Parse already uses a 1969 pivot for "06" layouts; re-pivot to
// match statement conventions.
func fixCentury(t time.Time, layout string) time.Time {
	if !strings.Contains(layout, "06") || strings.Contains(layout, "2006") {
		return t
	}
	yy := t.Year() % 100
	var year int
	if yy < 50 {
		year = 2000 + yy
	} else {
		year = 1900 + yy
	}
	if year == t.Year() {
		return t
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ToISODate renders a date in the canonical ISO form.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// ParseToISO is a convenience wrapper combining ParseDate and ToISODate.
// The empty string signals an unparseable date.
func ParseToISO(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return ToISODate(t)
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = regexp.MustCompile(`\s+`).ReplaceAllString(s, " ")
	return s
}

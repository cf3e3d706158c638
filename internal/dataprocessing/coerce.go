package dataprocessing

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the formats seen in Refinitiv exports, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate attempts to parse a date cell. It returns the parsed time and
// true on success, or the zero time and false when the cell is empty or
// matches none of the known layouts. Failure is an expected outcome, not an
// error: the caller records an explicit null.
func ParseDate(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount attempts to parse a numeric cell, tolerating thousands
// separators and surrounding whitespace. Returns the value and true on
// success, 0 and false otherwise.
func ParseAmount(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

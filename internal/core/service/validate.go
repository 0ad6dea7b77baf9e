package service

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("invalid date")
var errRangeInverted = errors.New("inverted date range")

// requiredText reports whether the value is non-blank after trimming.
func requiredText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// parseDate parses a yyyy-MM-dd calendar date as midnight UTC.
func parseDate(text string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t.UTC(), nil
}

// parseTimestamp parses a consultation timestamp. RFC 3339 is tried first,
// then a bare calendar date (interpreted as midnight UTC).
func parseTimestamp(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.UTC(), nil
	}
	return parseDate(text)
}

// dateRange resolves the optional bounds of a consultation history query.
// The start bound is the beginning of its calendar day; the end bound is
// inclusive through the end of that day (23:59:59.999). Returns
// errRangeInverted when both are present and start is after end.
func dateRange(startText, endText string) (from, to *time.Time, err error) {
	if strings.TrimSpace(startText) != "" {
		t, err := parseDate(startText)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if strings.TrimSpace(endText) != "" {
		t, err := parseDate(endText)
		if err != nil {
			return nil, nil, err
		}
		endOfDay := t.Add(24*time.Hour - time.Millisecond)
		to = &endOfDay
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, errRangeInverted
	}
	return from, to, nil
}

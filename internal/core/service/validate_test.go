package service

import (
	"testing"
	"time"
)

func TestRequiredText(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"x", true},
		{"  Ana  ", true},
	}
	for _, c := range cases {
		if got := requiredText(c.in); got != c.want {
			t.Errorf("requiredText(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("1990-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := parseDate("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if _, err := parseDate("01/02/1990"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("2024-03-05T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// A bare date is accepted as midnight UTC.
	got, err = parseTimestamp("2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestDateRange_BothBounds(t *testing.T) {
	from, to, err := dateRange("2024-01-01", "2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from == nil || to == nil {
		t.Fatal("expected both bounds")
	}
	if !from.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start bound: %v", from)
	}
	// End bound is inclusive through the end of the day.
	wantEnd := time.Date(2024, 1, 10, 23, 59, 59, 999000000, time.UTC)
	if !to.Equal(wantEnd) {
		t.Fatalf("unexpected end bound: %v, want %v", to, wantEnd)
	}
}

func TestDateRange_OpenSides(t *testing.T) {
	from, to, err := dateRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from != nil || to != nil {
		t.Fatal("expected both bounds open")
	}

	from, to, err = dateRange("2024-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from == nil || to != nil {
		t.Fatal("expected only the start bound")
	}
}

func TestDateRange_Inverted(t *testing.T) {
	_, _, err := dateRange("2024-01-10", "2024-01-01")
	if err != errRangeInverted {
		t.Fatalf("expected errRangeInverted, got %v", err)
	}
}

func TestDateRange_SameDay(t *testing.T) {
	// Equal bounds are a valid one-day range, not an inversion.
	from, to, err := dateRange("2024-01-05", "2024-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !from.Before(*to) {
		t.Fatal("start of day should precede end of day")
	}
}

func TestDateRange_Malformed(t *testing.T) {
	if _, _, err := dateRange("nope", ""); err != errInvalidDate {
		t.Fatalf("expected errInvalidDate, got %v", err)
	}
	if _, _, err := dateRange("", "nope"); err != errInvalidDate {
		t.Fatalf("expected errInvalidDate, got %v", err)
	}
}

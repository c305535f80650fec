package utils

import (
	"testing"
	"time"
)

func TestParseAPIDate_RoundTripsToISO(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"010126", "2026-01-01"},
		{"150326", "2026-03-15"},
		{"311299", "1999-12-31"},
		{"290224", "2024-02-29"},
	}

	for _, tc := range cases {
		parsed, err := ParseAPIDate(tc.in)
		if err != nil {
			t.Fatalf("ParseAPIDate(%q): %v", tc.in, err)
		}
		if got := ISODate(parsed); got != tc.want {
			t.Errorf("ParseAPIDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
		if got := FormatAPIDate(parsed); got != tc.in {
			t.Errorf("FormatAPIDate round trip for %q = %q", tc.in, got)
		}
	}
}

func TestParseAPIDate_RejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "1503", "15032026", "xx0326", "320126", "151326"} {
		if _, err := ParseAPIDate(in); err == nil {
			t.Errorf("ParseAPIDate(%q) succeeded, want error", in)
		}
	}
}

func TestAddYears_TwoCalendarYears(t *testing.T) {
	start := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	got := AddYears(start, 2)
	want := time.Date(2028, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddYears(%v, 2) = %v, want %v", start, got, want)
	}
}

func TestAddYears_LeapDayClampsToFeb28(t *testing.T) {
	leap := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	got := AddYears(leap, 2)
	want := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddYears(leap, 2) = %v, want %v", got, want)
	}

	// Leap to leap stays on Feb 29.
	got = AddYears(leap, 4)
	want = time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddYears(leap, 4) = %v, want %v", got, want)
	}
}

func TestAddYears_CenturyRule(t *testing.T) {
	// 2096 is leap, 2100 is not.
	leap := time.Date(2096, time.February, 29, 0, 0, 0, 0, time.UTC)
	got := AddYears(leap, 4)
	want := time.Date(2100, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddYears(2096-02-29, 4) = %v, want %v", got, want)
	}
}

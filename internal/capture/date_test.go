package capture_test

import (
	"testing"
	"time"

	"hoarder/internal/capture"
)

func TestParseCompactValidatesCalendar(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"20230615", true},
		{"20240229", true},
		{"20230229", false},
		{"20231301", false},
		{"20230631", false},
		{"00000101", false},
		{"2023061", false},
	}
	for _, tt := range tests {
		_, err := capture.ParseCompact(tt.in)
		if (err == nil) != tt.valid {
			t.Fatalf("ParseCompact(%q) err=%v, want valid=%v", tt.in, err, tt.valid)
		}
	}
}

func TestDateRendering(t *testing.T) {
	d, err := capture.NewDate(2023, time.June, 5)
	if err != nil {
		t.Fatalf("NewDate returned error: %v", err)
	}
	if d.Compact() != "20230605" {
		t.Fatalf("Compact = %q", d.Compact())
	}
	if d.ISO() != "2023-06-05" {
		t.Fatalf("ISO = %q", d.ISO())
	}
	if d.YearString() != "2023" {
		t.Fatalf("YearString = %q", d.YearString())
	}
	if d.IsZero() {
		t.Fatal("expected non-zero date")
	}
	if !(capture.Date{}).IsZero() {
		t.Fatal("expected zero date")
	}
}

func TestParseISO(t *testing.T) {
	d, err := capture.ParseISO("2020-05-01")
	if err != nil {
		t.Fatalf("ParseISO returned error: %v", err)
	}
	if d.Year != 2020 || d.Month != time.May || d.Day != 1 {
		t.Fatalf("unexpected date %+v", d)
	}
	for _, bad := range []string{"", "2020", "2020-13-01", "01-05-2020"} {
		if _, err := capture.ParseISO(bad); err == nil {
			t.Fatalf("ParseISO(%q) should fail", bad)
		}
	}
}

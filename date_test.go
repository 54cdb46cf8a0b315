package kpifolio

import (
	"slices"
	"testing"
)

func TestDate_StartEndOfMonth(t *testing.T) {
	on := d("2025-07-17")
	if got, want := on.StartOf(Monthly), d("2025-07-01"); got != want {
		t.Errorf("StartOf(Monthly) = %v, want %v", got, want)
	}
	if got, want := on.EndOf(Monthly), d("2025-07-31"); got != want {
		t.Errorf("EndOf(Monthly) = %v, want %v", got, want)
	}
	// February across a leap year boundary.
	if got, want := d("2024-02-10").EndOf(Monthly), d("2024-02-29"); got != want {
		t.Errorf("EndOf(Monthly) = %v, want %v", got, want)
	}
}

func TestDate_DaysSince(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-01-01", "2025-01-01", 0},
		{"2025-01-01", "2025-01-31", 30},
		{"2025-01-31", "2025-01-01", -30},
		{"2024-02-01", "2024-03-01", 29}, // leap year
	}
	for _, tt := range tests {
		if got := d(tt.to).DaysSince(d(tt.from)); got != tt.want {
			t.Errorf("DaysSince(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRange_Periods(t *testing.T) {
	r := NewRange(d("2025-01-15"), d("2025-03-02"))

	var labels []string
	for bucket := range r.Periods(Monthly) {
		labels = append(labels, Monthly.Label(bucket.From))
	}

	want := []string{"2025-01", "2025-02", "2025-03"}
	if !slices.Equal(labels, want) {
		t.Errorf("Periods(Monthly) = %v, want %v", labels, want)
	}
}

func TestPeriod_Label(t *testing.T) {
	on := d("2025-08-05")
	if got, want := Quarterly.Label(on), "2025-Q3"; got != want {
		t.Errorf("Quarterly.Label() = %q, want %q", got, want)
	}
	if got, want := Yearly.Label(on), "2025"; got != want {
		t.Errorf("Yearly.Label() = %q, want %q", got, want)
	}
}

func TestParseDate_Lenient(t *testing.T) {
	got, err := ParseDate("2025-7-1")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if want := NewDate(2025, 7, 1); got != want {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate() expected an error for garbage input")
	}
}

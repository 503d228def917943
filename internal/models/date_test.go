package models

import (
	"encoding/json"
	"testing"
	"time"
)

// TestDateOfUsesLocation verifies the calendar date depends on the zone, not UTC.
func TestDateOfUsesLocation(t *testing.T) {
	ts := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	saoPaulo := time.FixedZone("BRT", -3*3600)

	if got := DateOf(ts, time.UTC); got != (Date{2024, time.March, 1}) {
		t.Errorf("UTC date = %v", got)
	}
	if got := DateOf(ts, saoPaulo); got != (Date{2024, time.February, 29}) {
		t.Errorf("BRT date = %v, want 2024-02-29", got)
	}
}

// TestDaysSince verifies signed whole-day differences across month and year edges.
func TestDaysSince(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{Date{2024, time.March, 1}, Date{2024, time.February, 28}, 2},
		{Date{2023, time.March, 1}, Date{2023, time.February, 28}, 1},
		{Date{2025, time.January, 1}, Date{2024, time.December, 31}, 1},
		{Date{2024, time.June, 10}, Date{2024, time.June, 10}, 0},
		{Date{2024, time.June, 8}, Date{2024, time.June, 10}, -2},
	}
	for _, tt := range tests {
		if got := tt.a.DaysSince(tt.b); got != tt.want {
			t.Errorf("%v.DaysSince(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestDateJSON verifies dates serialize as YYYY-MM-DD strings.
func TestDateJSON(t *testing.T) {
	d := Date{2024, time.July, 4}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-07-04"` {
		t.Errorf("marshal = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("unmarshal = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"07/04/2024"`), &back); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

package calendar

import (
	"reflect"
	"testing"
	"time"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

// TestEmptyMonth verifies a month with no matching history has no workout days.
func TestEmptyMonth(t *testing.T) {
	history := []time.Time{at(2024, time.January, 3, 9), at(2024, time.March, 3, 9)}
	m := Month{Year: 2024, Month: time.February}

	if days := DaysWithWorkout(history, m, time.UTC); len(days) != 0 {
		t.Errorf("DaysWithWorkout = %v, want empty", days)
	}
	if n := WorkoutCountInMonth(history, m, time.UTC); n != 0 {
		t.Errorf("WorkoutCountInMonth = %d, want 0", n)
	}
}

// TestDayFifteen verifies a single entry on the 15th is reported as {15}.
func TestDayFifteen(t *testing.T) {
	history := []time.Time{at(2024, time.June, 15, 18)}
	got := DaysWithWorkout(history, Month{2024, time.June}, time.UTC)
	if !reflect.DeepEqual(got, []int{15}) {
		t.Errorf("DaysWithWorkout = %v, want [15]", got)
	}
}

// TestCountIsNotDeduplicated verifies two sessions on one day count twice
// while the day set lists the day once.
func TestCountIsNotDeduplicated(t *testing.T) {
	history := []time.Time{
		at(2024, time.June, 2, 7),
		at(2024, time.June, 2, 19),
		at(2024, time.June, 1, 7),
		at(2023, time.June, 2, 7), // same month, other year
	}
	m := Month{2024, time.June}
	if got := DaysWithWorkout(history, m, time.UTC); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("DaysWithWorkout = %v, want [1 2]", got)
	}
	if n := WorkoutCountInMonth(history, m, time.UTC); n != 3 {
		t.Errorf("WorkoutCountInMonth = %d, want 3", n)
	}
}

// TestMonthBoundaryInZone verifies entries are bucketed by the viewer's zone.
func TestMonthBoundaryInZone(t *testing.T) {
	brt := time.FixedZone("BRT", -3*3600)
	// 01:00 UTC on March 1 is still February 29 in BRT.
	history := []time.Time{at(2024, time.March, 1, 1)}

	if got := DaysWithWorkout(history, Month{2024, time.February}, brt); !reflect.DeepEqual(got, []int{29}) {
		t.Errorf("BRT February = %v, want [29]", got)
	}
	if got := DaysWithWorkout(history, Month{2024, time.March}, time.UTC); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("UTC March = %v, want [1]", got)
	}
}

// TestNavigation verifies month shifting with year rollover.
func TestNavigation(t *testing.T) {
	jan := Month{2024, time.January}
	if got := jan.Previous(); got != (Month{2023, time.December}) {
		t.Errorf("Jan.Previous = %v", got)
	}
	dec := Month{2024, time.December}
	if got := dec.Next(); got != (Month{2025, time.January}) {
		t.Errorf("Dec.Next = %v", got)
	}
	if got := jan.Next().Previous(); got != jan {
		t.Errorf("Next then Previous = %v, want %v", got, jan)
	}
}

// TestDaysInMonth verifies leap years and month lengths.
func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		m    Month
		want int
	}{
		{Month{2024, time.February}, 29},
		{Month{2023, time.February}, 28},
		{Month{1900, time.February}, 28},
		{Month{2000, time.February}, 29},
		{Month{2024, time.April}, 30},
		{Month{2024, time.December}, 31},
	}
	for _, tt := range tests {
		if got := tt.m.Days(); got != tt.want {
			t.Errorf("%v.Days() = %d, want %d", tt.m, got, tt.want)
		}
	}
}

// TestNewMonth verifies month numbers are range checked.
func TestNewMonth(t *testing.T) {
	if _, err := NewMonth(2024, 0); err == nil {
		t.Error("month 0 accepted")
	}
	if _, err := NewMonth(2024, 13); err == nil {
		t.Error("month 13 accepted")
	}
	m, err := NewMonth(2024, 12)
	if err != nil || m.Month != time.December {
		t.Errorf("NewMonth(2024, 12) = %v, %v", m, err)
	}
}

// TestBuild verifies the rendered grid for September 2024 (starts on a Sunday).
func TestBuild(t *testing.T) {
	history := []time.Time{
		at(2024, time.September, 3, 10),
		at(2024, time.September, 3, 20),
		at(2024, time.September, 30, 10),
	}
	now := at(2024, time.September, 14, 12)
	v := Build(history, Month{2024, time.September}, now, time.UTC)

	if v.MonthName != "Setembro" || v.DaysInMonth != 30 || len(v.Days) != 30 {
		t.Fatalf("view header = %s/%d/%d", v.MonthName, v.DaysInMonth, len(v.Days))
	}
	if v.LeadingBlanks != 0 {
		t.Errorf("LeadingBlanks = %d, want 0", v.LeadingBlanks)
	}
	if !v.Days[2].WorkedOut || !v.Days[29].WorkedOut || v.Days[3].WorkedOut {
		t.Errorf("worked-out flags wrong: %+v", v.Days)
	}
	if !v.Days[13].Today {
		t.Error("day 14 not marked as today")
	}
	if v.WorkoutCount != 3 || !reflect.DeepEqual(v.WorkoutDays, []int{3, 30}) {
		t.Errorf("count = %d, days = %v", v.WorkoutCount, v.WorkoutDays)
	}
	if v.Previous != (Ref{2024, 8}) || v.Next != (Ref{2024, 10}) {
		t.Errorf("refs = %v / %v", v.Previous, v.Next)
	}
}

// TestBuildTodayOutsideMonth verifies no cell is marked today for other months.
func TestBuildTodayOutsideMonth(t *testing.T) {
	v := Build(nil, Month{2024, time.February}, at(2024, time.March, 1, 0), time.UTC)
	for _, d := range v.Days {
		if d.Today {
			t.Fatalf("day %d marked today", d.Number)
		}
	}
	if v.LeadingBlanks != int(time.Thursday) {
		t.Errorf("LeadingBlanks = %d, want %d", v.LeadingBlanks, time.Thursday)
	}
}

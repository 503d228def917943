// Package calendar builds the monthly view of completed sessions from the
// ledger history. Nothing here is stored; every value is recomputed on read.
package calendar

import (
	"fmt"
	"sort"
	"time"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Month is a displayed (year, month) pair.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t in loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return Month{Year: t.Year(), Month: t.Month()}
}

// NewMonth validates a 1-based month number.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month %d out of range 1-12", month)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// Previous returns the month before m, rolling the year back after January.
func (m Month) Previous() Month { return m.shift(-1) }

// Next returns the month after m, rolling the year forward after December.
func (m Month) Next() Month { return m.shift(1) }

func (m Month) shift(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st (Sunday = 0).
func (m Month) FirstWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Name returns the Portuguese month name.
func (m Month) Name() string { return monthNames[m.Month-1] }

func (m Month) contains(t time.Time, loc *time.Location) bool {
	y, mo, _ := t.In(loc).Date()
	return y == m.Year && mo == m.Month
}

// DaysWithWorkout returns the sorted, distinct days of m that have at least
// one history entry, as seen in loc.
func DaysWithWorkout(history []time.Time, m Month, loc *time.Location) []int {
	if loc == nil {
		loc = time.Local
	}
	seen := map[int]bool{}
	days := []int{}
	for _, t := range history {
		if !m.contains(t, loc) {
			continue
		}
		d := t.In(loc).Day()
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)
	return days
}

// WorkoutCountInMonth counts history entries in m. Two sessions on the same
// day count twice.
func WorkoutCountInMonth(history []time.Time, m Month, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	n := 0
	for _, t := range history {
		if m.contains(t, loc) {
			n++
		}
	}
	return n
}

package progress

import (
	"time"

	"github.com/meltforce/gymtracker/internal/models"
	"github.com/meltforce/gymtracker/internal/rank"
)

// Snapshot is an immutable copy of the ledger's state.
type Snapshot struct {
	TotalWorkouts   int
	Streak          int
	LastWorkoutDate *models.Date
	History         []time.Time
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.History = append(make([]time.Time, 0, len(s.History)), s.History...)
	if s.LastWorkoutDate != nil {
		d := *s.LastWorkoutDate
		c.LastWorkoutDate = &d
	}
	return c
}

// Advance applies one finished session at now to s and returns the result.
// s is not modified.
//
// The day gap to the previous session is taken as an absolute value, so a
// completion dated before LastWorkoutDate is treated like a forward gap of
// the same size.
func Advance(s Snapshot, now time.Time, loc *time.Location) Snapshot {
	next := s.Clone()
	today := models.DateOf(now, loc)

	if s.LastWorkoutDate == nil {
		next.Streak = 1
	} else {
		diff := today.DaysSince(*s.LastWorkoutDate)
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
		case diff == 1:
			next.Streak++
		default:
			next.Streak = 1
		}
	}

	next.TotalWorkouts++
	next.History = append(next.History, now.Round(0))
	next.LastWorkoutDate = &today
	return next
}

// Report is the read model served to clients: ledger fields plus the
// derived rank standing.
type Report struct {
	TotalWorkouts   int           `json:"total_workouts"`
	Streak          int           `json:"streak"`
	LastWorkoutDate *models.Date  `json:"last_workout_date"`
	History         []time.Time   `json:"history"`
	Rank            rank.Standing `json:"rank"`
}

// Report resolves the rank for s against table.
func (s Snapshot) Report(table rank.Table) Report {
	c := s.Clone()
	return Report{
		TotalWorkouts:   c.TotalWorkouts,
		Streak:          c.Streak,
		LastWorkoutDate: c.LastWorkoutDate,
		History:         c.History,
		Rank:            table.Resolve(c.TotalWorkouts),
	}
}

package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/meltforce/gymtracker/internal/models"
)

// record is the persisted shape. Field names are part of the storage format.
type record struct {
	TotalWorkouts   int      `json:"totalWorkouts"`
	Streak          int      `json:"streak"`
	LastWorkoutDate *string  `json:"lastWorkoutDate"`
	History         []string `json:"history"`
}

// Encode serializes a snapshot to the persisted JSON form.
func Encode(s Snapshot) ([]byte, error) {
	rec := record{
		TotalWorkouts: s.TotalWorkouts,
		Streak:        s.Streak,
		History:       make([]string, 0, len(s.History)),
	}
	if s.LastWorkoutDate != nil {
		d := s.LastWorkoutDate.String()
		rec.LastWorkoutDate = &d
	}
	for _, t := range s.History {
		rec.History = append(rec.History, t.Format(time.RFC3339Nano))
	}
	return json.Marshal(rec)
}

// Decode parses the persisted JSON form and checks the ledger invariants.
func Decode(data []byte) (Snapshot, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Snapshot{}, fmt.Errorf("parsing ledger: %w", err)
	}

	s := Snapshot{
		TotalWorkouts: rec.TotalWorkouts,
		Streak:        rec.Streak,
		History:       make([]time.Time, 0, len(rec.History)),
	}
	for i, raw := range rec.History {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return Snapshot{}, fmt.Errorf("history[%d]: %w", i, err)
		}
		s.History = append(s.History, t)
	}
	if rec.LastWorkoutDate != nil {
		d, err := models.ParseDate(*rec.LastWorkoutDate)
		if err != nil {
			return Snapshot{}, fmt.Errorf("lastWorkoutDate: %w", err)
		}
		s.LastWorkoutDate = &d
	}

	if err := s.validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

func (s Snapshot) validate() error {
	if s.TotalWorkouts < 0 || s.Streak < 0 {
		return fmt.Errorf("negative counters (total=%d, streak=%d)", s.TotalWorkouts, s.Streak)
	}
	if len(s.History) != s.TotalWorkouts {
		return fmt.Errorf("history has %d entries, totalWorkouts is %d", len(s.History), s.TotalWorkouts)
	}
	if (s.LastWorkoutDate == nil) != (len(s.History) == 0) {
		return fmt.Errorf("lastWorkoutDate and history disagree")
	}
	if s.LastWorkoutDate != nil {
		// The date was taken in the writer's zone; any zone is within a day
		// of UTC.
		last := models.DateOf(s.History[len(s.History)-1], time.UTC)
		if gap := s.LastWorkoutDate.DaysSince(last); gap < -1 || gap > 1 {
			return fmt.Errorf("lastWorkoutDate %s does not match last history entry %s", s.LastWorkoutDate, last)
		}
	}
	return nil
}

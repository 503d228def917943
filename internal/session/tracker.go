// Package session tracks which exercises of one in-progress workout are done.
package session

import (
	"math"

	"github.com/google/uuid"
	"github.com/meltforce/gymtracker/internal/models"
)

// Tracker holds the transient state of one workout attempt. It is not safe
// for concurrent use; the owner serializes access.
type Tracker struct {
	id        uuid.UUID
	routine   models.Routine
	completed map[string]struct{}
}

// New starts a session for the given routine.
func New(routine models.Routine) *Tracker {
	return &Tracker{
		id:        uuid.New(),
		routine:   routine.Clone(),
		completed: make(map[string]struct{}),
	}
}

// ID identifies this attempt. Two attempts at the same routine get different IDs.
func (t *Tracker) ID() uuid.UUID { return t.id }

// Routine returns the routine being performed.
func (t *Tracker) Routine() models.Routine { return t.routine.Clone() }

// Toggle flips the completion state of an exercise and returns the new state.
// IDs that are not part of the routine are ignored and report false.
func (t *Tracker) Toggle(exerciseID string) bool {
	if !t.routine.HasExercise(exerciseID) {
		return false
	}
	if _, done := t.completed[exerciseID]; done {
		delete(t.completed, exerciseID)
		return false
	}
	t.completed[exerciseID] = struct{}{}
	return true
}

// IsCompleted reports whether the exercise has been marked done.
func (t *Tracker) IsCompleted(exerciseID string) bool {
	_, ok := t.completed[exerciseID]
	return ok
}

// Completed returns the completed exercise IDs in routine order.
func (t *Tracker) Completed() []string {
	out := make([]string, 0, len(t.completed))
	for _, e := range t.routine.Exercises {
		if _, ok := t.completed[e.ID]; ok {
			out = append(out, e.ID)
		}
	}
	return out
}

// CompletionPercent returns the rounded share of completed exercises, 0..100.
func (t *Tracker) CompletionPercent() int {
	total := len(t.routine.Exercises)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(t.completed)) / float64(total)))
}

// CanFinish reports whether the finish action should be offered. Finishing
// itself does not check this.
func (t *Tracker) CanFinish() bool {
	return len(t.completed) > 0
}

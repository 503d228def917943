// Package progress owns the persisted workout ledger: lifetime count,
// day streak and completion history.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// StoreKey is the record key the ledger is persisted under.
const StoreKey = "gymtracker_stats"

// Store persists opaque records by key. Get reports found=false for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

// Ledger is the single owner of progress state. Mutation happens only
// through RecordCompletion; readers get snapshots.
type Ledger struct {
	store Store
	loc   *time.Location
	log   *slog.Logger

	mu    sync.Mutex
	state Snapshot
}

// New creates a ledger in the zero state. Call Load to read persisted state.
func New(store Store, loc *time.Location, log *slog.Logger) *Ledger {
	if loc == nil {
		loc = time.Local
	}
	return &Ledger{
		store: store,
		loc:   loc,
		log:   log,
		state: Snapshot{History: []time.Time{}},
	}
}

// Location is the zone used to turn timestamps into calendar days.
func (l *Ledger) Location() *time.Location { return l.loc }

// Load reads the persisted ledger. Absent or malformed records leave the
// zero state in place; only storage failures are returned.
func (l *Ledger) Load(ctx context.Context) error {
	data, found, err := l.store.Get(ctx, StoreKey)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !found {
		l.log.Info("no saved progress, starting fresh")
		l.state = Snapshot{History: []time.Time{}}
		return nil
	}

	s, err := Decode(data)
	if err != nil {
		l.log.Warn("discarding unreadable progress record", "error", err)
		l.state = Snapshot{History: []time.Time{}}
		return nil
	}
	l.state = s
	l.log.Info("progress loaded", "total_workouts", s.TotalWorkouts, "streak", s.Streak)
	return nil
}

// RecordCompletion applies a finished session at now and persists the
// whole ledger. The in-memory state is updated even when the write fails;
// the next successful write replaces the stored record wholesale.
func (l *Ledger) RecordCompletion(ctx context.Context, now time.Time) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = Advance(l.state, now, l.loc)
	snap := l.state.Clone()

	data, err := Encode(snap)
	if err != nil {
		return snap, fmt.Errorf("encoding ledger: %w", err)
	}
	if err := l.store.Put(ctx, StoreKey, data); err != nil {
		return snap, fmt.Errorf("saving ledger: %w", err)
	}
	return snap, nil
}

// Current returns a snapshot of the ledger.
func (l *Ledger) Current() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

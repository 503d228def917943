// Package importer moves a progress record exported from the browser app's
// local storage into a server-side record store.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/gymtracker/internal/progress"
)

// ErrExists is returned when the store already holds progress and the
// import was not forced.
var ErrExists = errors.New("progress record already exists")

// Stats summarizes an import.
type Stats struct {
	TotalWorkouts int
	Streak        int
	LastWorkout   string
	Replaced      bool
	Written       bool
}

// Importer writes an exported ledger into a store.
type Importer struct {
	store  progress.Store
	log    *slog.Logger
	dryRun bool
	force  bool
}

// New creates a new Importer. With force an existing record is replaced.
func New(store progress.Store, log *slog.Logger, dryRun, force bool) *Importer {
	return &Importer{store: store, log: log, dryRun: dryRun, force: force}
}

// ImportFile reads an export file and imports it.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	return imp.Import(ctx, data)
}

// Import validates an export and writes it under progress.StoreKey.
//
// The export is either the record itself or a dump of the whole local
// storage, where each value is a JSON-encoded string:
//
//	{"gymtracker_stats": "{\"totalWorkouts\":3, ...}"}
func (imp *Importer) Import(ctx context.Context, data []byte) (*Stats, error) {
	record, err := extractRecord(data)
	if err != nil {
		return nil, err
	}
	snap, err := progress.Decode(record)
	if err != nil {
		return nil, fmt.Errorf("invalid progress record: %w", err)
	}

	stats := &Stats{TotalWorkouts: snap.TotalWorkouts, Streak: snap.Streak}
	if snap.LastWorkoutDate != nil {
		stats.LastWorkout = snap.LastWorkoutDate.String()
	}

	_, found, err := imp.store.Get(ctx, progress.StoreKey)
	if err != nil {
		return stats, fmt.Errorf("checking existing record: %w", err)
	}
	if found && !imp.force {
		return stats, ErrExists
	}
	stats.Replaced = found

	if imp.dryRun {
		imp.log.Info("dry run: record not written", "total_workouts", snap.TotalWorkouts)
		return stats, nil
	}

	// Re-encode so the stored form is canonical.
	out, err := progress.Encode(snap)
	if err != nil {
		return stats, fmt.Errorf("encoding record: %w", err)
	}
	if err := imp.store.Put(ctx, progress.StoreKey, out); err != nil {
		return stats, fmt.Errorf("writing record: %w", err)
	}
	stats.Written = true
	return stats, nil
}

// extractRecord returns the raw record JSON from either export shape.
func extractRecord(data []byte) ([]byte, error) {
	var dump map[string]json.RawMessage
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	raw, ok := dump[progress.StoreKey]
	if !ok {
		return data, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// Some tools export the value already decoded.
		return raw, nil
	}
	return []byte(s), nil
}

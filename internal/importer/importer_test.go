package importer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/meltforce/gymtracker/internal/progress"
)

type memStore struct {
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

const record = `{"totalWorkouts":2,"streak":2,"lastWorkoutDate":"2024-05-02","history":["2024-05-01T18:00:00Z","2024-05-02T18:00:00Z"]}`

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// TestImportShapes verifies both the bare record and a local storage dump
// are accepted.
func TestImportShapes(t *testing.T) {
	quoted, _ := json.Marshal(record)
	tests := []struct {
		name string
		data string
	}{
		{"bare record", record},
		{"local storage dump", `{"gymtracker_stats":` + string(quoted) + `,"other":"x"}`},
		{"decoded value", `{"gymtracker_stats":` + record + `}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{data: map[string][]byte{}}
			stats, err := New(store, discard(), false, false).Import(context.Background(), []byte(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if !stats.Written || stats.TotalWorkouts != 2 || stats.LastWorkout != "2024-05-02" {
				t.Errorf("stats = %+v", stats)
			}
			snap, err := progress.Decode(store.data[progress.StoreKey])
			if err != nil {
				t.Fatalf("stored record invalid: %v", err)
			}
			if snap.Streak != 2 {
				t.Errorf("streak = %d, want 2", snap.Streak)
			}
		})
	}
}

// TestImportRefusesOverwrite verifies an existing record needs force.
func TestImportRefusesOverwrite(t *testing.T) {
	store := &memStore{data: map[string][]byte{progress.StoreKey: []byte(`{}`)}}
	ctx := context.Background()

	if _, err := New(store, discard(), false, false).Import(ctx, []byte(record)); !errors.Is(err, ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
	stats, err := New(store, discard(), false, true).Import(ctx, []byte(record))
	if err != nil {
		t.Fatal(err)
	}
	if !stats.Replaced || !stats.Written {
		t.Errorf("stats = %+v", stats)
	}
}

// TestImportDryRun verifies nothing is written in dry-run mode.
func TestImportDryRun(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	stats, err := New(store, discard(), true, false).Import(context.Background(), []byte(record))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Written || len(store.data) != 0 {
		t.Errorf("dry run wrote data: %+v", stats)
	}
}

// TestImportRejectsInvalid verifies records breaking the ledger invariants
// are refused.
func TestImportRejectsInvalid(t *testing.T) {
	bad := `{"totalWorkouts":5,"streak":1,"lastWorkoutDate":"2024-05-02","history":["2024-05-02T18:00:00Z"]}`
	store := &memStore{data: map[string][]byte{}}
	if _, err := New(store, discard(), false, false).Import(context.Background(), []byte(bad)); err == nil {
		t.Fatal("expected error for total/history mismatch")
	}
	if _, err := New(store, discard(), false, false).Import(context.Background(), []byte("not json")); err == nil {
		t.Fatal("expected error for malformed export")
	}
}

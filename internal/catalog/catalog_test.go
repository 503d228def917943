package catalog

import (
	"net/url"
	"testing"

	"github.com/meltforce/gymtracker/internal/models"
)

// TestDefaultCatalog verifies the built-in data loads and keeps display order.
func TestDefaultCatalog(t *testing.T) {
	c := Default()
	routines := c.Routines()
	if len(routines) != 8 {
		t.Fatalf("got %d routines, want 8", len(routines))
	}
	for i, r := range routines {
		if r.ID != i+1 {
			t.Errorf("routines[%d].ID = %d, want %d", i, r.ID, i+1)
		}
		if len(r.Exercises) == 0 {
			t.Errorf("routine %d has no exercises", r.ID)
		}
	}
	if n := len(routines[6].Exercises); n != 5 {
		t.Errorf("cardio routine has %d exercises, want 5", n)
	}
}

// TestRoutineLookup verifies lookup by ID, including unknown IDs.
func TestRoutineLookup(t *testing.T) {
	c := Default()

	r, ok := c.Routine(3)
	if !ok {
		t.Fatal("routine 3 not found")
	}
	if r.Title != "Treino 3: Pernas A" {
		t.Errorf("title = %q", r.Title)
	}
	if _, ok := c.Routine(99); ok {
		t.Error("routine 99 should not exist")
	}
}

// TestRoutinesAreCopies verifies callers cannot mutate catalog data.
func TestRoutinesAreCopies(t *testing.T) {
	c := Default()
	r, _ := c.Routine(1)
	r.Exercises[0].Name = "changed"
	r.Title = "changed"

	again, _ := c.Routine(1)
	if again.Exercises[0].Name == "changed" || again.Title == "changed" {
		t.Error("catalog data was mutated through a returned routine")
	}
}

// TestNewRejectsDuplicates verifies routine and exercise ID uniqueness checks.
func TestNewRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		routines []models.Routine
	}{
		{
			name: "duplicate routine id",
			routines: []models.Routine{
				{ID: 1, Exercises: []models.Exercise{{ID: "a"}}},
				{ID: 1, Exercises: []models.Exercise{{ID: "b"}}},
			},
		},
		{
			name: "duplicate exercise id",
			routines: []models.Routine{
				{ID: 1, Exercises: []models.Exercise{{ID: "a"}}},
				{ID: 2, Exercises: []models.Exercise{{ID: "a"}}},
			},
		},
		{
			name: "empty exercise id",
			routines: []models.Routine{
				{ID: 1, Exercises: []models.Exercise{{Name: "nameless"}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.routines); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// TestVideoSearchURL verifies the search query is encoded and carries the form hint.
func TestVideoSearchURL(t *testing.T) {
	raw := VideoSearchURL("Supino Reto")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Host != "www.youtube.com" || u.Path != "/results" {
		t.Errorf("url = %s", raw)
	}
	if got := u.Query().Get("search_query"); got != "Supino Reto execução correta" {
		t.Errorf("search_query = %q", got)
	}
}

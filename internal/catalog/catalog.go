// Package catalog holds the static, read-only list of workout routines.
package catalog

import (
	"fmt"
	"net/url"

	"github.com/meltforce/gymtracker/internal/models"
)

// Catalog is an immutable, ordered set of routines.
type Catalog struct {
	routines []models.Routine
	byID     map[int]int
}

// New validates routines and returns a catalog over a private copy of them.
// Routine IDs must be unique, and exercise IDs unique across the catalog.
func New(routines []models.Routine) (*Catalog, error) {
	c := &Catalog{
		routines: make([]models.Routine, 0, len(routines)),
		byID:     make(map[int]int, len(routines)),
	}
	exerciseIDs := map[string]int{}
	for _, r := range routines {
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate routine id %d", r.ID)
		}
		for _, e := range r.Exercises {
			if e.ID == "" {
				return nil, fmt.Errorf("routine %d: exercise %q has no id", r.ID, e.Name)
			}
			if owner, dup := exerciseIDs[e.ID]; dup {
				return nil, fmt.Errorf("exercise id %q used by routines %d and %d", e.ID, owner, r.ID)
			}
			exerciseIDs[e.ID] = r.ID
		}
		c.byID[r.ID] = len(c.routines)
		c.routines = append(c.routines, r.Clone())
	}
	return c, nil
}

// Default returns the built-in eight-routine catalog.
func Default() *Catalog {
	c, err := New(defaultRoutines)
	if err != nil {
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return c
}

// Routines returns all routines in display order.
func (c *Catalog) Routines() []models.Routine {
	out := make([]models.Routine, len(c.routines))
	for i, r := range c.routines {
		out[i] = r.Clone()
	}
	return out
}

// Routine looks up a routine by ID.
func (c *Catalog) Routine(id int) (models.Routine, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Routine{}, false
	}
	return c.routines[i].Clone(), true
}

// VideoSearchURL returns a YouTube search for a correct-form demo of the exercise.
func VideoSearchURL(exerciseName string) string {
	q := url.Values{"search_query": {exerciseName + " execução correta"}}
	return "https://www.youtube.com/results?" + q.Encode()
}

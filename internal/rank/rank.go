// Package rank derives a gamification tier from the lifetime workout count.
package rank

import (
	"errors"
	"fmt"
)

// TopTierSpan is the display width, in workouts, of the progress bar once
// the highest tier has been reached.
const TopTierSpan = 100

// ErrInvalidTable is returned by NewTable for unusable tier tables.
var ErrInvalidTable = errors.New("invalid rank table")

// Tier is one rung of the rank ladder.
type Tier struct {
	Name  string `json:"name"`
	Min   int    `json:"min"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Standing is the resolved rank for a workout count.
type Standing struct {
	Tier     Tier    `json:"tier"`
	Index    int     `json:"index"`
	Next     *Tier   `json:"next,omitempty"`
	Progress float64 `json:"progress_percent"`
}

// Table is an ascending list of tiers starting at zero.
type Table struct {
	tiers []Tier
}

// NewTable validates tiers: at least one, first minimum zero, strictly ascending.
func NewTable(tiers []Tier) (Table, error) {
	if len(tiers) == 0 {
		return Table{}, fmt.Errorf("%w: no tiers", ErrInvalidTable)
	}
	if tiers[0].Min != 0 {
		return Table{}, fmt.Errorf("%w: first tier starts at %d, want 0", ErrInvalidTable, tiers[0].Min)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Min <= tiers[i-1].Min {
			return Table{}, fmt.Errorf("%w: tier %q (%d) not above %q (%d)",
				ErrInvalidTable, tiers[i].Name, tiers[i].Min, tiers[i-1].Name, tiers[i-1].Min)
		}
	}
	return Table{tiers: append([]Tier(nil), tiers...)}, nil
}

// DefaultTable is the six-tier ladder shown in the app.
func DefaultTable() Table {
	t, err := NewTable([]Tier{
		{Name: "Iniciante", Min: 0, Color: "slate", Icon: "🌱"},
		{Name: "Em Evolução", Min: 10, Color: "emerald", Icon: "🚀"},
		{Name: "Focado", Min: 25, Color: "blue", Icon: "⚡"},
		{Name: "Marombeiro", Min: 50, Color: "purple", Icon: "💪"},
		{Name: "Monstro", Min: 100, Color: "red", Icon: "🦍"},
		{Name: "Lenda", Min: 200, Color: "yellow", Icon: "👑"},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Tiers returns a copy of the table.
func (t Table) Tiers() []Tier {
	return append([]Tier(nil), t.tiers...)
}

// Resolve returns the highest tier whose minimum is <= total, the next tier
// if any, and the percentage of the way to it. A count equal to a tier's
// minimum belongs to that tier. Negative counts resolve as zero.
func (t Table) Resolve(total int) Standing {
	if len(t.tiers) == 0 {
		t = DefaultTable()
	}
	if total < 0 {
		total = 0
	}

	idx := 0
	for i, tier := range t.tiers {
		if total >= tier.Min {
			idx = i
		}
	}

	s := Standing{Tier: t.tiers[idx], Index: idx}
	span := TopTierSpan
	if idx+1 < len(t.tiers) {
		next := t.tiers[idx+1]
		s.Next = &next
		span = next.Min - s.Tier.Min
	}

	p := float64(total-s.Tier.Min) / float64(span) * 100
	s.Progress = min(100, max(0, p))
	return s
}

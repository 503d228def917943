// Package tracker is the read-side facade over the catalog, the progress
// ledger and the coach. The REST API and the MCP server both query it.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meltforce/gymtracker/internal/calendar"
	"github.com/meltforce/gymtracker/internal/catalog"
	"github.com/meltforce/gymtracker/internal/models"
	"github.com/meltforce/gymtracker/internal/progress"
	"github.com/meltforce/gymtracker/internal/rank"
)

// Errors returned by Service queries.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ProgressSource provides ledger snapshots.
type ProgressSource interface {
	Current() progress.Snapshot
	Location() *time.Location
}

// Advisor answers coaching questions.
type Advisor interface {
	Advice(ctx context.Context, exerciseName string) string
}

// RoutineDetail is a routine plus a form-video link per exercise ID.
type RoutineDetail struct {
	models.Routine
	Videos map[string]string `json:"videos"`
}

// Advice is a coach tip for an exercise.
type Advice struct {
	Exercise string `json:"exercise"`
	Text     string `json:"text"`
}

// Service answers read queries.
type Service struct {
	catalog  *catalog.Catalog
	progress ProgressSource
	ranks    rank.Table
	advisor  Advisor
	now      func() time.Time
}

// New creates a Service. now defaults to time.Now.
func New(cat *catalog.Catalog, src ProgressSource, ranks rank.Table, advisor Advisor, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{catalog: cat, progress: src, ranks: ranks, advisor: advisor, now: now}
}

// ListRoutines returns the catalog in display order.
func (s *Service) ListRoutines(_ context.Context) ([]models.Routine, error) {
	return s.catalog.Routines(), nil
}

// GetRoutine returns one routine with its video links.
func (s *Service) GetRoutine(_ context.Context, id int) (*RoutineDetail, error) {
	r, ok := s.catalog.Routine(id)
	if !ok {
		return nil, fmt.Errorf("routine %d: %w", id, ErrNotFound)
	}
	d := &RoutineDetail{Routine: r, Videos: make(map[string]string, len(r.Exercises))}
	for _, ex := range r.Exercises {
		d.Videos[ex.ID] = catalog.VideoSearchURL(ex.Name)
	}
	return d, nil
}

// GetProgress returns the ledger with its rank standing.
func (s *Service) GetProgress(_ context.Context) (*progress.Report, error) {
	rep := s.progress.Current().Report(s.ranks)
	return &rep, nil
}

// GetCalendar renders a month of workout history. Zero for both selects the
// current month; a month without a year is taken in the current year. A year
// without a month is rejected.
func (s *Service) GetCalendar(_ context.Context, year, month int) (*calendar.View, error) {
	loc := s.progress.Location()
	now := s.now()

	m := calendar.MonthOf(now, loc)
	if year != 0 || month != 0 {
		if year == 0 {
			year = m.Year
		}
		var err error
		if m, err = calendar.NewMonth(year, month); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	v := calendar.Build(s.progress.Current().History, m, now, loc)
	return &v, nil
}

// GetCoachAdvice asks the coach about an exercise by name.
func (s *Service) GetCoachAdvice(ctx context.Context, exerciseName string) (*Advice, error) {
	name := strings.TrimSpace(exerciseName)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrInvalidArgument)
	}
	return &Advice{Exercise: name, Text: s.advisor.Advice(ctx, name)}, nil
}

package mcp

import (
	"context"

	"github.com/meltforce/gymtracker/internal/calendar"
	"github.com/meltforce/gymtracker/internal/models"
	"github.com/meltforce/gymtracker/internal/progress"
	"github.com/meltforce/gymtracker/internal/tracker"
)

// DataSource abstracts the data layer for MCP tools. Both *tracker.Service
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListRoutines(ctx context.Context) ([]models.Routine, error)
	GetRoutine(ctx context.Context, id int) (*tracker.RoutineDetail, error)
	GetProgress(ctx context.Context) (*progress.Report, error)
	GetCalendar(ctx context.Context, year, month int) (*calendar.View, error)
	GetCoachAdvice(ctx context.Context, exerciseName string) (*tracker.Advice, error)
}

// Compile-time check: *tracker.Service satisfies DataSource.
var _ DataSource = (*tracker.Service)(nil)

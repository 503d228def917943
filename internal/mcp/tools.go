package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/gymtracker/internal/tracker"
)

// --- Tool definitions ---

var toolListRoutines = mcp.NewTool("list_routines",
	mcp.WithDescription("List all workout routines in the catalog with their exercises, target sets and reps."),
)

var toolGetRoutine = mcp.NewTool("get_routine",
	mcp.WithDescription("Get one workout routine by ID, including a form-demonstration video link for each exercise."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Routine ID (see list_routines)")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Get workout progress: total sessions, current day streak, last workout date, completion history and rank with progress to the next rank."),
)

var toolGetCalendar = mcp.NewTool("get_calendar",
	mcp.WithDescription("Get the monthly workout calendar: which days had a completed session and how many sessions the month had."),
	mcp.WithNumber("year", mcp.Description("Year (e.g. 2024). Defaults to the current year; requires month.")),
	mcp.WithNumber("month", mcp.Description("Month 1-12. Defaults to the current month.")),
)

var toolGetCoachAdvice = mcp.NewTool("get_coach_advice",
	mcp.WithDescription("Ask the virtual coach for a short execution tip and an injury-prevention tip for an exercise."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. 'Supino Reto')")),
)

// --- Tool handlers ---

func (h *handlers) listRoutines(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	routines, err := h.ds.ListRoutines(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(routines)
}

func (h *handlers) getRoutine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	routine, err := h.ds.GetRoutine(ctx, id)
	if errors.Is(err, tracker.ErrNotFound) {
		return mcp.NewToolResultError("no routine with that ID; call list_routines for valid IDs"), nil
	}
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(routine)
}

func (h *handlers) getProgress(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rep, err := h.ds.GetProgress(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(rep)
}

func (h *handlers) getCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year := req.GetInt("year", 0)
	month := req.GetInt("month", 0)

	v, err := h.ds.GetCalendar(ctx, year, month)
	if errors.Is(err, tracker.ErrInvalidArgument) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(v)
}

func (h *handlers) getCoachAdvice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	advice, err := h.ds.GetCoachAdvice(ctx, exercise)
	if err != nil {
		h.log.Warn("get_coach_advice failed", "exercise", exercise, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(advice)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

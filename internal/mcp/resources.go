package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Resource definitions ---

var resProgress = mcp.NewResource(
	"gymtracker://progress",
	"Workout Progress",
	mcp.WithResourceDescription("Total sessions, day streak, last workout date and current rank"),
	mcp.WithMIMEType("application/json"),
)

var resCatalog = mcp.NewResource(
	"gymtracker://catalog",
	"Routine Catalog",
	mcp.WithResourceDescription("All workout routines with their exercises"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) progress(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rep, err := h.ds.GetProgress(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, rep)
}

func (h *handlers) catalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	routines, err := h.ds.ListRoutines(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, routines)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meltforce/gymtracker/internal/calendar"
	"github.com/meltforce/gymtracker/internal/models"
	"github.com/meltforce/gymtracker/internal/progress"
	"github.com/meltforce/gymtracker/internal/tracker"
)

// HTTPClient implements DataSource by calling the GymTracker REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// is sent on POST requests.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	return c.do(req, path)
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	return c.do(req, path)
}

func (c *HTTPClient) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("httpclient: %s: %w", path, tracker.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("httpclient: %s: %w: %s", path, tracker.ErrInvalidArgument, body)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	body, err := c.get(ctx, "/api/v1/routines", nil)
	if err != nil {
		return nil, err
	}

	var routines []models.Routine
	if err := json.Unmarshal(body, &routines); err != nil {
		return nil, fmt.Errorf("httpclient: decode routines: %w", err)
	}
	return routines, nil
}

func (c *HTTPClient) GetRoutine(ctx context.Context, id int) (*tracker.RoutineDetail, error) {
	body, err := c.get(ctx, "/api/v1/routines/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var routine tracker.RoutineDetail
	if err := json.Unmarshal(body, &routine); err != nil {
		return nil, fmt.Errorf("httpclient: decode routine: %w", err)
	}
	return &routine, nil
}

func (c *HTTPClient) GetProgress(ctx context.Context) (*progress.Report, error) {
	body, err := c.get(ctx, "/api/v1/progress", nil)
	if err != nil {
		return nil, err
	}

	var rep progress.Report
	if err := json.Unmarshal(body, &rep); err != nil {
		return nil, fmt.Errorf("httpclient: decode progress: %w", err)
	}
	return &rep, nil
}

func (c *HTTPClient) GetCalendar(ctx context.Context, year, month int) (*calendar.View, error) {
	params := url.Values{}
	if year != 0 {
		params.Set("year", strconv.Itoa(year))
	}
	if month != 0 {
		params.Set("month", strconv.Itoa(month))
	}

	body, err := c.get(ctx, "/api/v1/calendar", params)
	if err != nil {
		return nil, err
	}

	var v calendar.View
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("httpclient: decode calendar: %w", err)
	}
	return &v, nil
}

func (c *HTTPClient) GetCoachAdvice(ctx context.Context, exerciseName string) (*tracker.Advice, error) {
	body, err := c.post(ctx, "/api/v1/coach/advice", map[string]string{"exercise": exerciseName})
	if err != nil {
		return nil, err
	}

	var advice tracker.Advice
	if err := json.Unmarshal(body, &advice); err != nil {
		return nil, fmt.Errorf("httpclient: decode advice: %w", err)
	}
	return &advice, nil
}

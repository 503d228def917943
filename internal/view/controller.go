// Package view implements the navigation state machine that sits between the
// catalog, the active session and the body simulator.
package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/meltforce/gymtracker/internal/catalog"
	"github.com/meltforce/gymtracker/internal/coach"
	"github.com/meltforce/gymtracker/internal/metrics"
	"github.com/meltforce/gymtracker/internal/progress"
	"github.com/meltforce/gymtracker/internal/session"
)

// Screen is a top-level navigation state.
type Screen string

// Screens.
const (
	ScreenCatalog       Screen = "CATALOG"
	ScreenActiveSession Screen = "ACTIVE_SESSION"
	ScreenSimulation    Screen = "SIMULATION"
)

// DefaultCelebrationDelay is how long the completion screen stays up.
const DefaultCelebrationDelay = 2500 * time.Millisecond

// Errors returned by controller operations.
var (
	ErrInvalidTransition = errors.New("view: action not allowed on current screen")
	ErrUnknownRoutine    = errors.New("view: unknown routine")
	ErrUnknownExercise   = errors.New("view: exercise not in active routine")
	ErrNoPhoto           = errors.New("view: no photo selected")
	ErrSimulationRunning = errors.New("view: simulation already running")
)

// Recorder receives finished sessions.
type Recorder interface {
	RecordCompletion(ctx context.Context, now time.Time) (progress.Snapshot, error)
}

// Advisor answers coaching questions. It never fails.
type Advisor interface {
	Advice(ctx context.Context, exerciseName string) string
}

// Simulator runs body-progress simulations.
type Simulator interface {
	Simulate(ctx context.Context, photo coach.Image, tf coach.Timeframe) (coach.Image, bool, error)
}

// Options configures a Controller. Catalog and Ledger are required.
type Options struct {
	Catalog          *catalog.Catalog
	Ledger           Recorder
	Advisor          Advisor
	Simulator        Simulator
	CelebrationDelay time.Duration
	Metrics          *metrics.Metrics
	Log              *slog.Logger

	// Now and AfterFunc default to time.Now and time.AfterFunc.
	Now       func() time.Time
	AfterFunc func(d time.Duration, f func())
}

// Controller owns navigation state. All methods are safe for concurrent use;
// events are applied one at a time.
type Controller struct {
	catalog   *catalog.Catalog
	ledger    Recorder
	advisor   Advisor
	simulator Simulator
	delay     time.Duration
	metrics   *metrics.Metrics
	log       *slog.Logger
	now       func() time.Time
	afterFunc func(time.Duration, func())

	inflight sync.WaitGroup

	mu          sync.Mutex
	screen      Screen
	session     *session.Tracker
	advice      map[string]AdviceState
	celebration *Celebration
	celebGen    int
	sim         *simulatorScreen
	simGen      int
}

// New creates a controller on the catalog screen.
func New(opts Options) *Controller {
	c := &Controller{
		catalog:   opts.Catalog,
		ledger:    opts.Ledger,
		advisor:   opts.Advisor,
		simulator: opts.Simulator,
		delay:     opts.CelebrationDelay,
		metrics:   opts.Metrics,
		log:       opts.Log,
		now:       opts.Now,
		afterFunc: opts.AfterFunc,
		screen:    ScreenCatalog,
	}
	if c.delay <= 0 {
		c.delay = DefaultCelebrationDelay
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.afterFunc == nil {
		c.afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return c
}

// State returns the current navigation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// SelectRoutine starts a session for the routine. Catalog screen only.
func (c *Controller) SelectRoutine(routineID int) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenCatalog {
		return c.stateLocked(), ErrInvalidTransition
	}
	r, ok := c.catalog.Routine(routineID)
	if !ok {
		return c.stateLocked(), ErrUnknownRoutine
	}
	c.session = session.New(r)
	c.advice = map[string]AdviceState{}
	c.screen = ScreenActiveSession
	c.log.Info("session started", "session", c.session.ID(), "routine", r.ID)
	return c.stateLocked(), nil
}

// OpenSimulator switches to the body simulator. Catalog screen only.
func (c *Controller) OpenSimulator() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenCatalog {
		return c.stateLocked(), ErrInvalidTransition
	}
	c.simGen++
	c.sim = &simulatorScreen{timeframe: coach.ThreeMonths}
	c.screen = ScreenSimulation
	return c.stateLocked(), nil
}

// Back returns to the catalog, discarding the session or simulator state.
func (c *Controller) Back() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.screen == ScreenActiveSession && c.celebration == nil:
		c.log.Info("session abandoned", "session", c.session.ID())
	case c.screen == ScreenSimulation:
	default:
		return c.stateLocked(), ErrInvalidTransition
	}
	c.toCatalogLocked()
	return c.stateLocked(), nil
}

// Finish records the active session in the ledger and shows the
// celebration, which reverts to the catalog after the configured delay.
// A failed ledger write is logged; the session still counts in memory.
func (c *Controller) Finish(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenActiveSession || c.celebration != nil {
		return c.stateLocked(), ErrInvalidTransition
	}

	now := c.now()
	snap, err := c.ledger.RecordCompletion(ctx, now)
	if err != nil {
		c.log.Warn("progress not saved", "session", c.session.ID(), "error", err)
	}
	c.metrics.SessionFinished(err == nil)
	c.log.Info("session finished",
		"session", c.session.ID(),
		"completed", len(c.session.Completed()),
		"total_workouts", snap.TotalWorkouts,
		"streak", snap.Streak,
	)

	c.celebGen++
	gen := c.celebGen
	c.celebration = &Celebration{
		TotalWorkouts: snap.TotalWorkouts,
		Streak:        snap.Streak,
		Until:         now.Add(c.delay),
	}
	c.afterFunc(c.delay, func() { c.endCelebration(gen) })
	return c.stateLocked(), nil
}

func (c *Controller) endCelebration(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.celebration == nil || c.celebGen != gen {
		return
	}
	c.toCatalogLocked()
}

// ToggleExercise flips an exercise in the active session. Unknown IDs are
// ignored.
func (c *Controller) ToggleExercise(exerciseID string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenActiveSession || c.celebration != nil {
		return c.stateLocked(), ErrInvalidTransition
	}
	c.session.Toggle(exerciseID)
	return c.stateLocked(), nil
}

func (c *Controller) toCatalogLocked() {
	c.screen = ScreenCatalog
	c.session = nil
	c.advice = nil
	c.celebration = nil
	c.sim = nil
}

// Wait blocks until background advice requests have settled.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

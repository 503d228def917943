package view

import (
	"context"

	"github.com/meltforce/gymtracker/internal/coach"
	"github.com/meltforce/gymtracker/internal/metrics"
)

type simulatorScreen struct {
	photo     *coach.Image
	timeframe coach.Timeframe
	result    *coach.Image
	errMsg    string
	loading   bool
}

// SelectPhoto sets the photo to simulate. Any previous result or error is
// cleared.
func (c *Controller) SelectPhoto(photo coach.Image) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenSimulation {
		return c.stateLocked(), ErrInvalidTransition
	}
	if c.sim.loading {
		return c.stateLocked(), ErrSimulationRunning
	}
	c.sim.photo = &photo
	c.sim.result = nil
	c.sim.errMsg = ""
	return c.stateLocked(), nil
}

// SetTimeframe chooses the projection horizon for the next run.
func (c *Controller) SetTimeframe(tf coach.Timeframe) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenSimulation {
		return c.stateLocked(), ErrInvalidTransition
	}
	if c.sim.loading {
		return c.stateLocked(), ErrSimulationRunning
	}
	c.sim.timeframe = tf
	return c.stateLocked(), nil
}

// RunSimulation runs the simulator on the selected photo and blocks until
// it answers. The lock is not held during the call. If the user left the
// simulator in the meantime the outcome is discarded. On failure the photo
// is kept so the run can be retried.
func (c *Controller) RunSimulation(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.screen != ScreenSimulation {
		defer c.mu.Unlock()
		return c.stateLocked(), ErrInvalidTransition
	}
	if c.sim.loading {
		defer c.mu.Unlock()
		return c.stateLocked(), ErrSimulationRunning
	}
	if c.sim.photo == nil {
		defer c.mu.Unlock()
		return c.stateLocked(), ErrNoPhoto
	}
	photo, tf, gen := *c.sim.photo, c.sim.timeframe, c.simGen
	c.sim.loading = true
	c.sim.result = nil
	c.sim.errMsg = ""
	c.mu.Unlock()

	var (
		out coach.Image
		ok  bool
		err error
	)
	if c.simulator == nil {
		err = coach.ErrMissingCredentials
	} else {
		// In-flight AI calls are not cancelled when the client goes away.
		out, ok, err = c.simulator.Simulate(context.WithoutCancel(ctx), photo, tf)
	}

	switch {
	case err != nil:
		c.metrics.SimulationDone(metrics.SimulationError)
	case !ok:
		c.metrics.SimulationDone(metrics.SimulationNoResult)
	default:
		c.metrics.SimulationDone(metrics.SimulationOK)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenSimulation || c.simGen != gen {
		c.log.Debug("dropping simulation result for closed simulator", "timeframe", tf)
		return c.stateLocked(), nil
	}
	c.sim.loading = false
	switch {
	case err != nil:
		c.sim.errMsg = coach.FailureMessage(tf, false)
	case !ok:
		c.sim.errMsg = coach.FailureMessage(tf, true)
	default:
		c.sim.result = &out
	}
	return c.stateLocked(), nil
}

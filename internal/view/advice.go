package view

import (
	"context"

	"github.com/meltforce/gymtracker/internal/coach"
)

// RequestAdvice asks the coach about an exercise of the active session.
// The answer arrives asynchronously and is dropped if the session is gone
// by then. Asking again for the same exercise overwrites the earlier answer.
func (c *Controller) RequestAdvice(exerciseID string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenActiveSession || c.celebration != nil {
		return c.stateLocked(), ErrInvalidTransition
	}
	ex, ok := c.session.Routine().Exercise(exerciseID)
	if !ok {
		return c.stateLocked(), ErrUnknownExercise
	}
	if c.advisor == nil {
		c.advice[exerciseID] = AdviceState{Text: coach.AdviceNoCredentials}
		return c.stateLocked(), nil
	}

	sessionID := c.session.ID()
	c.advice[exerciseID] = AdviceState{Loading: true}
	c.metrics.AdviceRequested()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		text := c.advisor.Advice(context.Background(), ex.Name)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.session == nil || c.session.ID() != sessionID {
			c.log.Debug("dropping advice for closed session", "session", sessionID, "exercise", exerciseID)
			return
		}
		c.advice[exerciseID] = AdviceState{Text: text}
	}()

	return c.stateLocked(), nil
}

// DismissAdvice hides the advice shown for an exercise.
func (c *Controller) DismissAdvice(exerciseID string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenActiveSession || c.celebration != nil {
		return c.stateLocked(), ErrInvalidTransition
	}
	if adv, ok := c.advice[exerciseID]; ok && !adv.Loading {
		delete(c.advice, exerciseID)
	}
	return c.stateLocked(), nil
}

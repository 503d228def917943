package view

import (
	"time"

	"github.com/meltforce/gymtracker/internal/catalog"
	"github.com/meltforce/gymtracker/internal/coach"
)

// State is a snapshot of the controller, shaped for JSON clients.
type State struct {
	Screen      Screen          `json:"screen"`
	Session     *SessionState   `json:"session,omitempty"`
	Celebration *Celebration    `json:"celebration,omitempty"`
	Simulator   *SimulatorState `json:"simulator,omitempty"`
}

// SessionState describes the active session.
type SessionState struct {
	ID                string                 `json:"id"`
	RoutineID         int                    `json:"routine_id"`
	Title             string                 `json:"title"`
	Subtitle          string                 `json:"subtitle"`
	Color             string                 `json:"color"`
	Exercises         []SessionExercise      `json:"exercises"`
	CompletionPercent int                    `json:"completion_percent"`
	CanFinish         bool                   `json:"can_finish"`
	Advice            map[string]AdviceState `json:"advice"`
}

// SessionExercise is one row of the active session.
type SessionExercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sets      string `json:"sets"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
	VideoURL  string `json:"video_url"`
}

// AdviceState is the coach tip shown for an exercise.
type AdviceState struct {
	Loading bool   `json:"loading"`
	Text    string `json:"text,omitempty"`
}

// Celebration is shown after finishing a session until Until.
type Celebration struct {
	TotalWorkouts int       `json:"total_workouts"`
	Streak        int       `json:"streak"`
	Until         time.Time `json:"until"`
}

// SimulatorState describes the body simulator screen. Images are data URLs.
type SimulatorState struct {
	HasPhoto       bool            `json:"has_photo"`
	Timeframe      coach.Timeframe `json:"timeframe"`
	TimeframeLabel string          `json:"timeframe_label"`
	Loading        bool            `json:"loading"`
	Result         string          `json:"result,omitempty"`
	Error          string          `json:"error,omitempty"`
}

func (c *Controller) stateLocked() State {
	st := State{Screen: c.screen}

	if c.session != nil {
		r := c.session.Routine()
		ss := &SessionState{
			ID:                c.session.ID().String(),
			RoutineID:         r.ID,
			Title:             r.Title,
			Subtitle:          r.Subtitle,
			Color:             r.Color,
			Exercises:         make([]SessionExercise, 0, len(r.Exercises)),
			CompletionPercent: c.session.CompletionPercent(),
			CanFinish:         c.session.CanFinish(),
			Advice:            make(map[string]AdviceState, len(c.advice)),
		}
		for _, ex := range r.Exercises {
			ss.Exercises = append(ss.Exercises, SessionExercise{
				ID:        ex.ID,
				Name:      ex.Name,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				Completed: c.session.IsCompleted(ex.ID),
				VideoURL:  catalog.VideoSearchURL(ex.Name),
			})
		}
		for id, adv := range c.advice {
			ss.Advice[id] = adv
		}
		st.Session = ss
	}

	if c.celebration != nil {
		cel := *c.celebration
		st.Celebration = &cel
	}

	if c.sim != nil {
		sim := &SimulatorState{
			HasPhoto:       c.sim.photo != nil,
			Timeframe:      c.sim.timeframe,
			TimeframeLabel: c.sim.timeframe.Label(),
			Loading:        c.sim.loading,
			Error:          c.sim.errMsg,
		}
		if c.sim.result != nil {
			sim.Result = c.sim.result.DataURL()
		}
		st.Simulator = sim
	}
	return st
}

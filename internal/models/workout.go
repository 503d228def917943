package models

// Exercise is one target exercise inside a routine. Sets and reps are display
// strings ("8-12", "Até a falha", "30 seg") and are never parsed.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps"`
	Category string `json:"category,omitempty"`
}

// Routine is a named, ordered collection of exercises.
type Routine struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	Color     string     `json:"color"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise returns the exercise with the given ID.
func (r Routine) Exercise(id string) (Exercise, bool) {
	for _, e := range r.Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// HasExercise reports whether id belongs to the routine.
func (r Routine) HasExercise(id string) bool {
	_, ok := r.Exercise(id)
	return ok
}

// Clone returns a copy that shares no memory with r.
func (r Routine) Clone() Routine {
	c := r
	c.Exercises = append([]Exercise(nil), r.Exercises...)
	return c
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/gymtracker/internal/tracker"
	"github.com/meltforce/gymtracker/internal/view"
)

func (s *Server) handleListRoutines(w http.ResponseWriter, r *http.Request) {
	routines, err := s.tracker.ListRoutines(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routines)
}

func (s *Server) handleGetRoutine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid routine ID"})
		return
	}

	routine, err := s.tracker.GetRoutine(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	rep, err := s.tracker.GetProgress(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid year"})
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid month"})
		return
	}

	v, err := s.tracker.GetCalendar(r.Context(), year, month)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleCoachAdvice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Exercise string `json:"exercise"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	advice, err := s.tracker.GetCoachAdvice(r.Context(), body.Exercise)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

// writeError maps domain errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, tracker.ErrNotFound),
		errors.Is(err, view.ErrUnknownRoutine),
		errors.Is(err, view.ErrUnknownExercise):
		status = http.StatusNotFound
	case errors.Is(err, tracker.ErrInvalidArgument),
		errors.Is(err, view.ErrNoPhoto):
		status = http.StatusBadRequest
	case errors.Is(err, view.ErrInvalidTransition),
		errors.Is(err, view.ErrSimulationRunning):
		status = http.StatusConflict
	default:
		s.log.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// intParam parses an optional integer query parameter; absent means 0.
func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

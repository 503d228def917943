package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/gymtracker/internal/coach"
	"github.com/meltforce/gymtracker/internal/view"
)

// maxPhotoBytes bounds the simulator photo upload.
const maxPhotoBytes = 10 << 20

func (s *Server) handleViewState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.view.State())
}

// writeState answers a view action with the resulting state.
func (s *Server) writeState(w http.ResponseWriter, status int, st view.State, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, status, st)
}

func (s *Server) handleSelectRoutine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid routine ID"})
		return
	}
	st, err := s.view.SelectRoutine(id)
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.Back()
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.Finish(r.Context())
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleToggleExercise(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.ToggleExercise(chi.URLParam(r, "exerciseID"))
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleRequestAdvice(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.RequestAdvice(chi.URLParam(r, "exerciseID"))
	s.writeState(w, http.StatusAccepted, st, err)
}

func (s *Server) handleDismissAdvice(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.DismissAdvice(chi.URLParam(r, "exerciseID"))
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleOpenSimulator(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.OpenSimulator()
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleSelectPhoto(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPhotoBytes)).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	img, err := coach.DecodeImage(body.Image)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	st, err := s.view.SelectPhoto(img)
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleSetTimeframe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Timeframe string `json:"timeframe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	tf, err := coach.ParseTimeframe(body.Timeframe)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	st, err := s.view.SetTimeframe(tf)
	s.writeState(w, http.StatusOK, st, err)
}

func (s *Server) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	st, err := s.view.RunSimulation(r.Context())
	s.writeState(w, http.StatusOK, st, err)
}

package adapthttp

import (
	"context"
	"net/http"

	"ifjourney/internal/app"
	"ifjourney/internal/domain"
)

func (s *Server) handleFastingCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFromContext(r.Context())
	status, err := s.fasting.Current(r.Context(), sess.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	// A null body means no session exists.
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleFastingStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFromContext(r.Context())

	var req struct {
		Method   string `json:"method"`
		Duration int    `json:"duration"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	started, err := s.fasting.Start(r.Context(), sess.Email, req.Method, req.Duration)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, started)
}

func (s *Server) handleFastingPause(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.fasting.Pause)
}

func (s *Server) handleFastingResume(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.fasting.Resume)
}

func (s *Server) handleFastingComplete(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.fasting.Complete)
}

// handleTransition runs one of the Pause/Resume/Complete operations and
// maps the state-machine sentinels onto HTTP statuses.
func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, email string) (*domain.FastingSession, error)) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFromContext(r.Context())

	updated, err := op(r.Context(), sess.Email)
	switch err {
	case nil:
	case app.ErrNoActiveSession:
		writeError(w, http.StatusNotFound, err)
		return
	case app.ErrInvalidTransition:
		writeError(w, http.StatusConflict, err)
		return
	default:
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleFastingClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFromContext(r.Context())
	if err := s.fasting.Clear(r.Context(), sess.Email); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

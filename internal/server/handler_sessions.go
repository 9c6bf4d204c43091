package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/me/gosched/pkg/model"
)

// sessionView is the session representation returned by the API.
type sessionView struct {
	ID        string `json:"id"`
	Capacity  int    `json:"capacity"`
	JobCount  int    `json:"job_count"`
	CreatedAt string `json:"created_at"`
}

func viewOf(sess *session) sessionView {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sessionView{
		ID:        sess.ID,
		Capacity:  sess.Capacity,
		JobCount:  sess.registry.Len(),
		CreatedAt: sess.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req struct {
		Capacity int `json:"capacity"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, reqID, http.StatusBadRequest,
				model.NewValidationError("invalid JSON body: "+err.Error()))
			return
		}
	}

	sess := s.sessions.create(req.Capacity)
	s.logger.Info("session created", "session_id", sess.ID, "capacity", sess.Capacity)
	respondCreated(w, reqID, viewOf(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := s.sessions.get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		respondFromError(w, reqID, model.NewNotFoundError("session", chi.URLParam(r, "sessionID")))
		return
	}
	respondOK(w, reqID, viewOf(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "sessionID")
	if !s.sessions.delete(id) {
		respondFromError(w, reqID, model.NewNotFoundError("session", id))
		return
	}
	s.logger.Info("session deleted", "session_id", id)
	respondOK(w, reqID, map[string]string{"deleted": id})
}

func (s *Server) handleRegisterJob(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := s.sessions.get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		respondFromError(w, reqID, model.NewNotFoundError("session", chi.URLParam(r, "sessionID")))
		return
	}

	var req struct {
		Arrival  int `json:"arrival_time"`
		Burst    int `json:"burst_time"`
		Priority int `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid JSON body: "+err.Error()))
		return
	}

	sess.mu.Lock()
	job, err := sess.registry.Register(req.Arrival, req.Burst, req.Priority)
	sess.mu.Unlock()
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}

	s.logger.Info("job registered", "session_id", sess.ID, "pid", job.PID,
		"arrival", job.ArrivalTime, "burst", job.BurstTime, "priority", job.Priority)
	respondCreated(w, reqID, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := s.sessions.get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		respondFromError(w, reqID, model.NewNotFoundError("session", chi.URLParam(r, "sessionID")))
		return
	}

	sess.mu.Lock()
	jobs := sess.registry.Jobs()
	sess.mu.Unlock()
	respondOK(w, reqID, jobs)
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/me/gosched/internal/sim"
	"github.com/me/gosched/pkg/model"
)

// runRequest carries run parameters. quantum is only meaningful for rr and
// compare; 0 falls back to the server's configured default.
type runRequest struct {
	Quantum int `json:"quantum"`
}

func (s *Server) decodeRunRequest(r *http.Request) (runRequest, error) {
	req := runRequest{}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, model.NewValidationError("invalid JSON body: " + err.Error())
		}
	}
	if req.Quantum == 0 {
		req.Quantum = s.config.DefaultQuantum
	}
	return req, nil
}

func (s *Server) handleRunPolicy(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := s.sessions.get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		respondFromError(w, reqID, model.NewNotFoundError("session", chi.URLParam(r, "sessionID")))
		return
	}

	policy, err := model.ParsePolicy(chi.URLParam(r, "policy"))
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}
	req, err := s.decodeRunRequest(r)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}

	sess.mu.Lock()
	jobs := sess.registry.Jobs()
	sess.mu.Unlock()

	res, err := sim.Run(policy, jobs, req.Quantum)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}

	s.metrics.countRun(policy)
	s.logger.Info("run finished", "session_id", sess.ID, "policy", policy,
		"jobs", len(jobs), "avg_waiting", res.Averages.WaitingTime)
	respondOK(w, reqID, res)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := s.sessions.get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		respondFromError(w, reqID, model.NewNotFoundError("session", chi.URLParam(r, "sessionID")))
		return
	}

	req, err := s.decodeRunRequest(r)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}

	sess.mu.Lock()
	jobs := sess.registry.Jobs()
	sess.mu.Unlock()

	cmp, err := sim.CompareAll(jobs, req.Quantum)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}

	for _, res := range cmp.Results {
		s.metrics.countRun(res.Policy)
	}
	s.logger.Info("comparison finished", "session_id", sess.ID, "jobs", len(jobs))
	respondOK(w, reqID, cmp)
}

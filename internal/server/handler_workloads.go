package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/me/gosched/internal/sim"
	"github.com/me/gosched/internal/workload"
	"github.com/me/gosched/pkg/model"
)

// workloadsEnabled guards the library endpoints when the server runs
// without a store.
func (s *Server) workloadsEnabled(w http.ResponseWriter, reqID string) bool {
	if s.store == nil {
		respondError(w, reqID, http.StatusServiceUnavailable, &model.APIError{
			Code:    model.ErrInternal,
			Message: "workload library is disabled (no store configured)",
		})
		return false
	}
	return true
}

func (s *Server) handleCreateWorkload(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.workloadsEnabled(w, reqID) {
		return
	}

	var wl workload.Workload
	if err := json.NewDecoder(r.Body).Decode(&wl); err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid JSON body: "+err.Error()))
		return
	}
	if len(wl.Jobs) == 0 {
		respondFromError(w, reqID, model.NewEmptyInputError())
		return
	}
	// Reject invalid job attributes before they reach the library.
	if _, err := wl.Register(s.config.Capacity); err != nil {
		respondFromError(w, reqID, err)
		return
	}

	if err := s.store.CreateWorkload(r.Context(), &wl); err != nil {
		respondFromError(w, reqID, err)
		return
	}
	s.logger.Info("workload created", "name", wl.Name, "jobs", len(wl.Jobs))
	respondCreated(w, reqID, wl)
}

func (s *Server) handleListWorkloads(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.workloadsEnabled(w, reqID) {
		return
	}

	opts := model.DefaultListOptions()
	if v := r.URL.Query().Get("limit"); v != "" {
		opts.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		opts.Offset, _ = strconv.Atoi(v)
	}
	opts.Clamp()

	workloads, total, err := s.store.ListWorkloads(r.Context(), opts)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}
	respondList(w, reqID, workloads, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+len(workloads) < total,
	})
}

func (s *Server) handleGetWorkload(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.workloadsEnabled(w, reqID) {
		return
	}

	name := chi.URLParam(r, "name")
	wl, err := s.store.GetWorkload(r.Context(), name)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}
	if wl == nil {
		respondFromError(w, reqID, model.NewNotFoundError("workload", name))
		return
	}
	respondOK(w, reqID, wl)
}

func (s *Server) handleDeleteWorkload(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.workloadsEnabled(w, reqID) {
		return
	}

	name := chi.URLParam(r, "name")
	if err := s.store.DeleteWorkload(r.Context(), name); err != nil {
		respondFromError(w, reqID, err)
		return
	}
	s.logger.Info("workload deleted", "name", name)
	respondOK(w, reqID, map[string]string{"deleted": name})
}

// handleCompareWorkload runs all four policies against a stored workload.
// The request may override the workload's default quantum.
func (s *Server) handleCompareWorkload(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.workloadsEnabled(w, reqID) {
		return
	}

	name := chi.URLParam(r, "name")
	wl, err := s.store.GetWorkload(r.Context(), name)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}
	if wl == nil {
		respondFromError(w, reqID, model.NewNotFoundError("workload", name))
		return
	}

	// Quantum resolution: explicit request value, then the workload's own,
	// then the server default.
	var req runRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, reqID, http.StatusBadRequest,
				model.NewValidationError("invalid JSON body: "+err.Error()))
			return
		}
	}
	quantum := req.Quantum
	if quantum == 0 {
		quantum = wl.Quantum
	}
	if quantum == 0 {
		quantum = s.config.DefaultQuantum
	}

	reg, err := wl.Register(s.config.Capacity)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}

	cmp, err := sim.CompareAll(reg.Jobs(), quantum)
	if err != nil {
		respondFromError(w, reqID, err)
		return
	}
	for _, res := range cmp.Results {
		s.metrics.countRun(res.Policy)
	}
	s.logger.Info("workload comparison finished", "name", name, "jobs", reg.Len())
	respondOK(w, reqID, cmp)
}

// Package registry owns the registered job set for a simulation session.
// It is the single source of truth for the static job attributes; every
// policy run works on a private copy obtained from Jobs().
package registry

import (
	"fmt"

	"github.com/me/gosched/pkg/model"
)

// DefaultCapacity is the registration ceiling used when no explicit bound is
// configured.
const DefaultCapacity = 100

// Registry is a capacity-bounded collection of jobs. PIDs are assigned
// sequentially starting at 1 in registration order; that order is the
// tie-break order used by every policy.
type Registry struct {
	capacity int
	jobs     []model.Job
	nextPID  int
}

// New creates an empty registry holding at most capacity jobs. A
// non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{capacity: capacity, nextPID: 1}
}

// Register validates the scalar inputs, assigns the next sequential pid, and
// stores the job. On any validation failure the registry is left unchanged.
func (r *Registry) Register(arrival, burst, priority int) (model.Job, error) {
	var details []model.FieldError
	if arrival < 0 {
		details = append(details, model.FieldError{Field: "arrival_time", Message: "must be a non-negative integer"})
	}
	if burst <= 0 {
		details = append(details, model.FieldError{Field: "burst_time", Message: "must be a positive integer"})
	}
	if priority < 0 {
		details = append(details, model.FieldError{Field: "priority", Message: "must be a non-negative integer"})
	}
	if len(details) > 0 {
		return model.Job{}, model.NewValidationError("invalid job attributes", details...)
	}
	if len(r.jobs) >= r.capacity {
		return model.Job{}, model.NewValidationError(
			fmt.Sprintf("registry at capacity (%d jobs)", r.capacity))
	}

	job := model.Job{
		PID:         r.nextPID,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    priority,
	}
	job.ResetState()

	r.jobs = append(r.jobs, job)
	r.nextPID++
	return job, nil
}

// Jobs returns an independent snapshot of the registered jobs with freshly
// reset simulation state. Runs mutate the snapshot, never the registry.
func (r *Registry) Jobs() []model.Job {
	return model.CloneJobs(r.jobs)
}

// Len returns the number of registered jobs.
func (r *Registry) Len() int {
	return len(r.jobs)
}

// Capacity returns the registration ceiling.
func (r *Registry) Capacity() int {
	return r.capacity
}

// Reset discards all registered jobs and restarts pid assignment at 1.
func (r *Registry) Reset() {
	r.jobs = nil
	r.nextPID = 1
}

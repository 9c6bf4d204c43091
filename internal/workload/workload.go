// Package workload defines the YAML job-set format consumed by the local
// runner and the workload library, and the conversion into registered jobs.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/me/gosched/internal/registry"
	"github.com/me/gosched/pkg/model"
)

// Job is one job declaration in a workload file.
type Job struct {
	Arrival  int `yaml:"arrival" json:"arrival"`
	Burst    int `yaml:"burst" json:"burst"`
	Priority int `yaml:"priority" json:"priority"`
}

// Workload is a named job set plus a default Round-Robin quantum.
//
// Example file:
//
//	name: mixed-batch
//	quantum: 3
//	jobs:
//	  - {arrival: 0, burst: 8, priority: 2}
//	  - {arrival: 1, burst: 4, priority: 1}
type Workload struct {
	Name    string `yaml:"name" json:"name"`
	Quantum int    `yaml:"quantum" json:"quantum"`
	Jobs    []Job  `yaml:"jobs" json:"jobs"`
}

// Parse decodes a workload document. Scalar validation happens later, at
// registration; Parse only rejects structurally unusable documents.
func Parse(data []byte) (*Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse workload: %w", err)
	}
	if len(w.Jobs) == 0 {
		return nil, model.NewEmptyInputError()
	}
	return &w, nil
}

// Load reads and parses a workload file.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload %s: %w", path, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Register registers every job of the workload into a fresh registry, in
// declaration order, and returns it. Any invalid job aborts with the
// registry's validation error annotated with the job's position.
func (w *Workload) Register(capacity int) (*registry.Registry, error) {
	r := registry.New(capacity)
	for i, j := range w.Jobs {
		if _, err := r.Register(j.Arrival, j.Burst, j.Priority); err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
	}
	return r, nil
}

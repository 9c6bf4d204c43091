// Package store persists the workload library: named job sets that can be
// re-run later. Simulation runs themselves are never persisted.
package store

import (
	"context"

	"github.com/me/gosched/internal/workload"
	"github.com/me/gosched/pkg/model"
)

// Store defines the persistence layer for workloads.
type Store interface {
	CreateWorkload(ctx context.Context, w *workload.Workload) error
	GetWorkload(ctx context.Context, name string) (*workload.Workload, error)
	ListWorkloads(ctx context.Context, opts model.ListOptions) ([]*workload.Workload, int, error)
	DeleteWorkload(ctx context.Context, name string) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}

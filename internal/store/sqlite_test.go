package store

import (
	"context"
	"testing"

	"github.com/me/gosched/internal/logging"
	"github.com/me/gosched/internal/workload"
	"github.com/me/gosched/pkg/model"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", logging.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleWorkload(name string) *workload.Workload {
	return &workload.Workload{
		Name:    name,
		Quantum: 3,
		Jobs: []workload.Job{
			{Arrival: 0, Burst: 8, Priority: 2},
			{Arrival: 1, Burst: 4, Priority: 1},
		},
	}
}

func TestCreateAndGetWorkload(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if err := st.CreateWorkload(ctx, sampleWorkload("mixed")); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetWorkload(ctx, "mixed")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("workload not found after create")
	}
	if got.Quantum != 3 || len(got.Jobs) != 2 || got.Jobs[1].Burst != 4 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestGetWorkloadAbsent(t *testing.T) {
	st := testStore(t)
	got, err := st.GetWorkload(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for absent workload", got)
	}
}

func TestCreateWorkloadConflict(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if err := st.CreateWorkload(ctx, sampleWorkload("dup")); err != nil {
		t.Fatal(err)
	}
	err := st.CreateWorkload(ctx, sampleWorkload("dup"))
	if !model.IsCode(err, model.ErrConflict) {
		t.Fatalf("err = %v, want CONFLICT", err)
	}
}

func TestCreateWorkloadEmptyName(t *testing.T) {
	st := testStore(t)
	err := st.CreateWorkload(context.Background(), sampleWorkload(""))
	if !model.IsCode(err, model.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_ERROR", err)
	}
}

func TestListWorkloads(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if err := st.CreateWorkload(ctx, sampleWorkload(name)); err != nil {
			t.Fatal(err)
		}
	}

	all, total, err := st.ListWorkloads(ctx, model.DefaultListOptions())
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("total = %d, len = %d, want 3/3", total, len(all))
	}

	page, total, err := st.ListWorkloads(ctx, model.ListOptions{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(page) != 1 {
		t.Fatalf("paged: total = %d, len = %d, want 3/1", total, len(page))
	}
}

func TestDeleteWorkload(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if err := st.CreateWorkload(ctx, sampleWorkload("gone")); err != nil {
		t.Fatal(err)
	}
	if err := st.DeleteWorkload(ctx, "gone"); err != nil {
		t.Fatal(err)
	}
	got, err := st.GetWorkload(ctx, "gone")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("workload still present after delete")
	}

	err = st.DeleteWorkload(ctx, "gone")
	if !model.IsCode(err, model.ErrNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}

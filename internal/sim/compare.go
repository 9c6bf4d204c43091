package sim

import (
	"fmt"

	"github.com/me/gosched/pkg/model"
)

// CompareAll runs every policy against the same job set, each on its own
// private copy, in the fixed order FCFS, SJF, Priority, RR. quantum applies
// to the Round-Robin run and is validated before any policy runs so a
// comparison never reports partial results.
func CompareAll(jobs []model.Job, quantum int) (*model.Comparison, error) {
	if len(jobs) == 0 {
		return nil, model.NewEmptyInputError()
	}
	if quantum <= 0 {
		return nil, model.NewValidationError(
			fmt.Sprintf("quantum must be a positive integer, got %d", quantum),
			model.FieldError{Field: "quantum", Message: "must be a positive integer"})
	}

	cmp := &model.Comparison{Quantum: quantum}
	for _, name := range model.AllPolicies() {
		res, err := Run(name, jobs, quantum)
		if err != nil {
			return nil, err
		}
		cmp.Results = append(cmp.Results, *res)
	}
	return cmp, nil
}

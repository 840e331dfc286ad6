package planning

import (
	"errors"
	"fmt"
)

// ErrMissingTimeBudget indicates a budget-driven solve was started without MaxTime
var ErrMissingTimeBudget = errors.New("a time budget (max time) is required")

// ErrUnknownSolver indicates a solver name that is not registered
type ErrUnknownSolver struct {
	Name string
}

func (e *ErrUnknownSolver) Error() string {
	return fmt.Sprintf("unknown solver: %s (expected incremental or downshift)", e.Name)
}

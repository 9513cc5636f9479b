package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkflowTimeout is returned when the workflow exceeds its deadline.
	ErrWorkflowTimeout = errors.New("workflow timeout exceeded")

	// ErrWorkflowCancelled is returned when the context is cancelled.
	ErrWorkflowCancelled = errors.New("workflow cancelled")
)

// StepError wraps an error with the name of the step that produced it.
type StepError struct {
	StepName string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.StepName, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

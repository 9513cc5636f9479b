package workflow

import (
	"context"
	"errors"

	"github.com/wayfinder-ai/wayfinder/event"
)

// Workflow is a named, runnable composition of steps.
type Workflow struct {
	name string
	root Step
}

// New creates a workflow around a root step, typically a Chain.
func New(name string, root Step) *Workflow {
	return &Workflow{name: name, root: root}
}

// Name returns the workflow name.
func (w *Workflow) Name() string { return w.name }

// Run executes the workflow to completion. The returned Result always
// carries the final state, even on failure, so callers can inspect
// partial progress.
func (w *Workflow) Run(ctx context.Context, state *State, opts ...Option) (*Result, error) {
	if state == nil {
		state = NewState()
	}

	res := &Result{
		WorkflowName: w.name,
		State:        state,
	}

	stepResult, err := w.root.Run(ctx, state, opts...)
	if err != nil {
		res.Error = err
		res.Termination = terminationFromError(err)
		return res, err
	}

	res.Output = stepResult.Output
	res.Usage = stepResult.Usage
	res.Termination = TerminationComplete
	return res, nil
}

// RunStream executes the workflow and returns a channel of events.
// The stream opens with RunStart and closes with RunEnd on success or
// RunError on failure.
func (w *Workflow) RunStream(ctx context.Context, state *State, opts ...Option) <-chan Event {
	ch := event.NewChannel()

	go func() {
		defer close(ch)

		if state == nil {
			state = NewState()
		}

		event.Emit(ch, Event{Type: event.RunStart, StepName: w.name})

		var failed bool
		for ev := range w.root.RunStream(ctx, state, opts...) {
			if ev.Type == event.RunError {
				failed = true
			}
			event.Emit(ch, ev)
		}

		if failed {
			return
		}

		event.Emit(ch, Event{
			Type:     event.RunEnd,
			StepName: w.name,
			Message:  string(TerminationComplete),
		})
	}()

	return ch
}

func terminationFromError(err error) TerminationReason {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrWorkflowTimeout):
		return TerminationTimeout
	case errors.Is(err, context.Canceled), errors.Is(err, ErrWorkflowCancelled):
		return TerminationCancelled
	default:
		return TerminationError
	}
}

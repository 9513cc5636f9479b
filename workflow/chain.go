package workflow

import (
	"context"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/event"
)

// Chain executes steps sequentially, passing state between them.
// The chain's output is the output of its last step.
type Chain struct {
	name  string
	steps []Step
}

// NewChain creates a sequential workflow.
func NewChain(name string, steps ...Step) *Chain {
	return &Chain{name: name, steps: steps}
}

// Name returns the chain name.
func (c *Chain) Name() string { return c.name }

// Steps returns the chain's steps in execution order.
func (c *Chain) Steps() []Step { return c.steps }

// Run executes steps sequentially.
func (c *Chain) Run(ctx context.Context, state *State, opts ...Option) (*StepResult, error) {
	options := ApplyOptions(opts...)

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	var totalUsage ai.Usage
	var lastResult *StepResult

	for _, step := range c.steps {
		if err := ctx.Err(); err != nil {
			return nil, &StepError{StepName: step.Name(), Err: err}
		}

		stepCtx := ctx
		if options.StepTimeout > 0 {
			var cancel context.CancelFunc
			stepCtx, cancel = context.WithTimeout(ctx, options.StepTimeout)
			defer cancel()
		}

		result, err := step.Run(stepCtx, state, opts...)
		if err != nil {
			if options.ErrorHandler != nil {
				if handlerErr := options.ErrorHandler(ctx, step.Name(), err); handlerErr != nil {
					return nil, &StepError{StepName: step.Name(), Err: handlerErr}
				}
				if options.ContinueOnError {
					continue
				}
			}
			return nil, &StepError{StepName: step.Name(), Err: err}
		}

		if options.OnStepComplete != nil {
			options.OnStepComplete(ctx, result)
		}

		totalUsage.Add(result.Usage)
		lastResult = result
	}

	out := &StepResult{
		StepName: c.name,
		Usage:    totalUsage,
	}
	if lastResult != nil {
		out.Output = lastResult.Output
		out.Response = lastResult.Response
	}
	return out, nil
}

// RunStream executes steps sequentially and emits events. Events from
// each step pass through unchanged so callers see per-step progress.
func (c *Chain) RunStream(ctx context.Context, state *State, opts ...Option) <-chan Event {
	ch := event.NewChannel()

	go func() {
		defer close(ch)
		options := ApplyOptions(opts...)

		if options.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, options.Timeout)
			defer cancel()
		}

		var lastResponse *ai.Response

		for i, step := range c.steps {
			if err := ctx.Err(); err != nil {
				event.Emit(ch, Event{Type: event.RunError, StepName: step.Name(), Error: &StepError{StepName: step.Name(), Err: err}})
				return
			}

			stepCtx := ctx
			if options.StepTimeout > 0 {
				var cancel context.CancelFunc
				stepCtx, cancel = context.WithTimeout(ctx, options.StepTimeout)
				defer cancel()
			}

			var stepErr error
			for ev := range step.RunStream(stepCtx, state, opts...) {
				if ev.Step == 0 {
					ev.Step = i + 1
				}
				event.Emit(ch, ev)

				switch ev.Type {
				case event.RunError:
					stepErr = ev.Error
				case event.StepEnd:
					if ev.StepName == step.Name() && ev.Response != nil {
						lastResponse = ev.Response
					}
				}
			}

			if stepErr != nil {
				if options.ErrorHandler != nil {
					if handlerErr := options.ErrorHandler(ctx, step.Name(), stepErr); handlerErr == nil && options.ContinueOnError {
						continue
					}
				}
				return
			}
		}

		event.Emit(ch, Event{
			Type:     event.StepEnd,
			StepName: c.name,
			Step:     len(c.steps),
			Response: lastResponse,
		})
	}()

	return ch
}

package workflow

import (
	"context"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/chat"
	"github.com/wayfinder-ai/wayfinder/event"
)

// Step represents a single unit of work in a workflow.
// Steps can be functions, LLM calls, agent runs, or nested workflows.
type Step interface {
	// Name returns a unique identifier for the step.
	Name() string

	// Run executes the step and returns the result.
	Run(ctx context.Context, state *State, opts ...Option) (*StepResult, error)

	// RunStream executes the step and returns a channel of events.
	RunStream(ctx context.Context, state *State, opts ...Option) <-chan Event
}

// StepFunc is a function signature for simple step implementations.
type StepFunc func(ctx context.Context, state *State) error

// FuncStep wraps a function as a Step.
type FuncStep struct {
	name string
	fn   StepFunc
}

// NewFuncStep creates a step from a function.
func NewFuncStep(name string, fn StepFunc) *FuncStep {
	return &FuncStep{name: name, fn: fn}
}

// Name returns the step name.
func (f *FuncStep) Name() string { return f.name }

// Run executes the function.
func (f *FuncStep) Run(ctx context.Context, state *State, opts ...Option) (*StepResult, error) {
	if err := f.fn(ctx, state); err != nil {
		return nil, err
	}
	return &StepResult{StepName: f.name}, nil
}

// RunStream executes the function and emits events.
func (f *FuncStep) RunStream(ctx context.Context, state *State, opts ...Option) <-chan Event {
	ch := make(chan Event, 10)
	go func() {
		defer close(ch)
		event.Emit(ch, Event{Type: event.StepStart, StepName: f.name})

		if err := f.fn(ctx, state); err != nil {
			event.Emit(ch, Event{Type: event.RunError, StepName: f.name, Error: err})
			return
		}

		event.Emit(ch, Event{Type: event.StepEnd, StepName: f.name})
	}()
	return ch
}

// PromptFunc generates messages from state for an LLM call.
type PromptFunc func(state *State) []ai.Message

// PromptStep makes a single LLM call with a dynamic prompt.
type PromptStep struct {
	name       string
	chatClient chat.Client
	prompt     PromptFunc
	outputKey  string
	chatOpts   []ai.Option
}

// NewPromptStep creates a step for a single LLM call.
// The prompt function generates messages from current state.
// If outputKey is non-empty, the response content is stored in state under that key.
func NewPromptStep(name string, c chat.Client, prompt PromptFunc, outputKey string, opts ...ai.Option) *PromptStep {
	return &PromptStep{
		name:       name,
		chatClient: c,
		prompt:     prompt,
		outputKey:  outputKey,
		chatOpts:   opts,
	}
}

// Name returns the step name.
func (p *PromptStep) Name() string { return p.name }

// Run executes the LLM call.
func (p *PromptStep) Run(ctx context.Context, state *State, opts ...Option) (*StepResult, error) {
	options := ApplyOptions(opts...)

	chatOpts := make([]ai.Option, 0, len(p.chatOpts)+len(options.ChatOptions))
	chatOpts = append(chatOpts, p.chatOpts...)
	chatOpts = append(chatOpts, options.ChatOptions...)

	msgs := p.prompt(state)
	resp, err := p.chatClient.Chat(ctx, msgs, chatOpts...)
	if err != nil {
		return nil, err
	}

	if p.outputKey != "" {
		state.Set(p.outputKey, resp.Content)
	}

	return &StepResult{
		StepName: p.name,
		Output:   resp.Content,
		Response: resp,
		Usage:    resp.Usage,
	}, nil
}

// RunStream executes the LLM call with streaming.
func (p *PromptStep) RunStream(ctx context.Context, state *State, opts ...Option) <-chan Event {
	ch := event.NewChannel()

	go func() {
		defer close(ch)
		event.Emit(ch, Event{Type: event.StepStart, StepName: p.name})

		options := ApplyOptions(opts...)

		chatOpts := make([]ai.Option, 0, len(p.chatOpts)+len(options.ChatOptions))
		chatOpts = append(chatOpts, p.chatOpts...)
		chatOpts = append(chatOpts, options.ChatOptions...)

		msgs := p.prompt(state)
		streamCh, err := p.chatClient.ChatStream(ctx, msgs, chatOpts...)
		if err != nil {
			event.Emit(ch, Event{Type: event.RunError, StepName: p.name, Error: err})
			return
		}

		var response *ai.Response
		for ev := range streamCh {
			switch ev.Type {
			case event.RunError:
				event.Emit(ch, Event{Type: event.RunError, StepName: p.name, Error: ev.Error})
				return
			case event.MessageStart:
				event.Emit(ch, Event{Type: event.MessageStart, StepName: p.name, MessageID: ev.MessageID})
			case event.MessageDelta:
				event.Emit(ch, Event{Type: event.MessageDelta, StepName: p.name, MessageID: ev.MessageID, Delta: ev.Delta})
			case event.MessageEnd:
				event.Emit(ch, Event{Type: event.MessageEnd, StepName: p.name, MessageID: ev.MessageID, Response: ev.Response})
				response = ev.Response
			}
		}

		if response == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			event.Emit(ch, Event{Type: event.RunError, StepName: p.name, Error: err})
			return
		}

		if p.outputKey != "" {
			state.Set(p.outputKey, response.Content)
		}
		event.Emit(ch, Event{
			Type:     event.StepEnd,
			StepName: p.name,
			Response: response,
		})
	}()

	return ch
}

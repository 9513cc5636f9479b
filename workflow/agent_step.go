package workflow

import (
	"context"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/agent"
	"github.com/wayfinder-ai/wayfinder/chat"
	"github.com/wayfinder-ai/wayfinder/event"
	"github.com/wayfinder-ai/wayfinder/tool"
)

// AgentResult contains the structured output from an AgentStep execution.
type AgentResult struct {
	// Response is the final model response.
	Response *ai.Response
	// Messages is the complete conversation history.
	Messages []ai.Message
	// Steps is the number of agent iterations.
	Steps int
	// Termination indicates why the agent stopped.
	Termination agent.TerminationReason
}

// AgentStep wraps the agent package for autonomous tool-calling within a
// workflow. It runs an agent loop to completion and stores the final result
// in state.
type AgentStep struct {
	name       string
	chatClient chat.Client
	registry   *tool.Registry
	prompt     PromptFunc
	outputKey  string
	agentOpts  []agent.Option
	chatOpts   []ai.Option
}

// NewAgentStep creates a step that runs an autonomous tool-calling agent.
// The prompt function builds the initial messages from state. When outputKey
// is non-empty, the agent's final text output is stored under that key and
// the full *AgentResult under outputKey + "_result".
func NewAgentStep(
	name string,
	chatClient chat.Client,
	registry *tool.Registry,
	prompt PromptFunc,
	outputKey string,
	agentOpts []agent.Option,
	chatOpts ...ai.Option,
) *AgentStep {
	return &AgentStep{
		name:       name,
		chatClient: chatClient,
		registry:   registry,
		prompt:     prompt,
		outputKey:  outputKey,
		agentOpts:  agentOpts,
		chatOpts:   chatOpts,
	}
}

// Name returns the step name.
func (a *AgentStep) Name() string { return a.name }

// Run executes the agent to completion.
func (a *AgentStep) Run(ctx context.Context, state *State, opts ...Option) (*StepResult, error) {
	options := ApplyOptions(opts...)

	msgs := a.prompt(state)

	ag := agent.New(a.chatClient, a.registry)
	result, err := ag.Run(ctx, msgs, a.buildAgentOpts(options)...)
	if err != nil {
		return nil, &StepError{StepName: a.name, Err: err}
	}
	if result.Error != nil {
		return nil, &StepError{StepName: a.name, Err: result.Error}
	}

	a.storeResult(state, result)

	return &StepResult{
		StepName: a.name,
		Output:   result.Response.Content,
		Response: result.Response,
		Usage:    result.TotalUsage,
		Metadata: map[string]any{
			"steps":       result.Steps,
			"termination": string(result.Termination),
		},
	}, nil
}

// RunStream executes the agent and forwards its events tagged with the
// step name. Message, tool call, and iteration events pass through so
// callers can render agent progress live.
func (a *AgentStep) RunStream(ctx context.Context, state *State, opts ...Option) <-chan Event {
	ch := event.NewChannel()

	go func() {
		defer close(ch)

		options := ApplyOptions(opts...)

		event.Emit(ch, Event{Type: event.StepStart, StepName: a.name})

		msgs := a.prompt(state)

		ag := agent.New(a.chatClient, a.registry)
		agentCh := ag.RunStream(ctx, msgs, a.buildAgentOpts(options)...)

		var lastResponse *ai.Response
		var steps int
		var termination agent.TerminationReason

		for agentEvent := range agentCh {
			if agentEvent.Step > steps {
				steps = agentEvent.Step
			}

			switch agentEvent.Type {
			case event.RunStart:
				// Swallowed: the workflow already emitted StepStart.

			case event.MessageStart, event.MessageDelta:
				fwd := agentEvent
				fwd.StepName = a.name
				event.Emit(ch, fwd)

			case event.MessageEnd:
				if agentEvent.Response != nil {
					lastResponse = agentEvent.Response
				}
				fwd := agentEvent
				fwd.StepName = a.name
				event.Emit(ch, fwd)

			case event.ToolCallStart, event.ToolCallArgs, event.ToolCallEnd, event.ToolCallResult:
				fwd := agentEvent
				fwd.StepName = a.name
				event.Emit(ch, fwd)

			case event.RunError:
				event.Emit(ch, Event{
					Type:     event.RunError,
					StepName: a.name,
					Step:     agentEvent.Step,
					Error:    &StepError{StepName: a.name, Err: agentEvent.Error},
				})
				return

			case event.RunEnd:
				termination = agent.TerminationReason(agentEvent.Message)
			}
		}

		if lastResponse == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			event.Emit(ch, Event{Type: event.RunError, StepName: a.name, Error: &StepError{StepName: a.name, Err: err}})
			return
		}

		a.storeStreamResult(state, lastResponse, steps, termination)

		event.Emit(ch, Event{
			Type:     event.StepEnd,
			StepName: a.name,
			Step:     steps,
			Response: lastResponse,
			Message:  string(termination),
		})
	}()

	return ch
}

func (a *AgentStep) buildAgentOpts(options *Options) []agent.Option {
	chatOpts := make([]ai.Option, 0, len(a.chatOpts)+len(options.ChatOptions))
	chatOpts = append(chatOpts, a.chatOpts...)
	chatOpts = append(chatOpts, options.ChatOptions...)

	agentOpts := make([]agent.Option, 0, len(a.agentOpts)+2)
	agentOpts = append(agentOpts, a.agentOpts...)
	if len(chatOpts) > 0 {
		agentOpts = append(agentOpts, agent.WithChatOptions(chatOpts...))
	}
	if options.StepTimeout > 0 {
		agentOpts = append(agentOpts, agent.WithTimeout(options.StepTimeout))
	}
	return agentOpts
}

func (a *AgentStep) storeResult(state *State, result *agent.Result) {
	if a.outputKey == "" {
		return
	}
	state.Set(a.outputKey, result.Response.Content)
	state.Set(a.outputKey+"_result", &AgentResult{
		Response:    result.Response,
		Messages:    result.Messages(),
		Steps:       result.Steps,
		Termination: result.Termination,
	})
}

func (a *AgentStep) storeStreamResult(state *State, resp *ai.Response, steps int, termination agent.TerminationReason) {
	if a.outputKey == "" {
		return
	}
	state.Set(a.outputKey, resp.Content)
	state.Set(a.outputKey+"_result", &AgentResult{
		Response:    resp,
		Steps:       steps,
		Termination: termination,
	})
}

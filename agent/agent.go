package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/chat"
	"github.com/wayfinder-ai/wayfinder/event"
	"github.com/wayfinder-ai/wayfinder/internal/store"
	"github.com/wayfinder-ai/wayfinder/tool"
)

// Agent orchestrates autonomous tool-calling conversations.
type Agent struct {
	chatClient chat.Client
	registry   *tool.Registry
}

// New creates a new Agent with the given chat client and tool registry.
func New(c chat.Client, registry *tool.Registry) *Agent {
	return &Agent{
		chatClient: c,
		registry:   registry,
	}
}

// Run executes the agent loop and returns the final result.
// This is a blocking call that runs until the agent completes.
func (a *Agent) Run(ctx context.Context, messages []ai.Message, opts ...Option) (*Result, error) {
	eventCh := a.RunStream(ctx, messages, opts...)

	result := &Result{
		history: store.NewMessageStoreFrom(messages),
	}

	var totalUsage ai.Usage
	var lastResponse *ai.Response
	var pendingAssistantMsg *ai.Message
	var pendingToolResults []ai.ToolResult

	for ev := range eventCh {
		result.Steps = ev.Step

		switch ev.Type {
		case event.StepStart:
			// Commit pending messages from previous step
			if pendingAssistantMsg != nil {
				result.history.Append(*pendingAssistantMsg)
				pendingAssistantMsg = nil
			}
			if len(pendingToolResults) > 0 {
				result.history.Append(ai.NewToolResultMessage(pendingToolResults...))
				pendingToolResults = nil
			}

		case event.StepEnd:
			lastResponse = ev.Response
			if ev.Response != nil {
				totalUsage.Add(ev.Response.Usage)

				if len(ev.Response.ToolCalls) > 0 {
					pendingAssistantMsg = &ai.Message{
						Role:      ai.RoleAssistant,
						Content:   ev.Response.Content,
						ToolCalls: ev.Response.ToolCalls,
					}
				}
			}

		case event.ToolCallResult:
			if ev.ToolResult != nil {
				pendingToolResults = append(pendingToolResults, *ev.ToolResult)
			}

		case event.RunEnd:
			result.Response = ev.Response
			result.Termination = TerminationReason(ev.Message)
			if result.Response == nil {
				result.Response = lastResponse
			}

		case event.RunError:
			result.Error = ev.Error
			result.Termination = TerminationError
		}
	}

	// Commit any remaining messages
	if pendingAssistantMsg != nil {
		result.history.Append(*pendingAssistantMsg)
	}
	if len(pendingToolResults) > 0 {
		result.history.Append(ai.NewToolResultMessage(pendingToolResults...))
	}

	result.TotalUsage = totalUsage
	return result, result.Error
}

// RunStream executes the agent loop and returns a channel of events.
// The channel is closed when the agent completes or encounters a fatal error.
// Callers should drain the channel to ensure proper cleanup.
func (a *Agent) RunStream(ctx context.Context, messages []ai.Message, opts ...Option) <-chan Event {
	eventCh := event.NewChannel()

	go a.runLoop(ctx, messages, eventCh, opts...)

	return eventCh
}

func (a *Agent) runLoop(ctx context.Context, messages []ai.Message, eventCh chan<- Event, opts ...Option) {
	defer close(eventCh)

	options := ApplyOptions(opts...)

	// Apply overall timeout if specified
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	event.Emit(eventCh, Event{Type: event.RunStart})

	// Prepare chat options with tools
	chatOpts := options.ChatOptions
	if a.registry != nil && a.registry.Len() > 0 {
		chatOpts = append([]ai.Option{ai.WithTools(a.registry.Tools())}, chatOpts...)
	}

	// Copy messages to avoid mutating the original
	history := store.NewMessageStoreFrom(messages)

	step := 0

	for {
		step++

		// Check termination conditions before step
		if reason := a.checkTermination(ctx, step, options); reason != "" {
			a.emitComplete(eventCh, step, nil, reason)
			return
		}

		event.Emit(eventCh, Event{Type: event.StepStart, Step: step})

		response, err := a.executeStep(ctx, history.Messages(), chatOpts, step, eventCh)
		if err != nil {
			event.Emit(eventCh, Event{Type: event.RunError, Step: step, Error: err})
			return
		}

		event.Emit(eventCh, Event{Type: event.StepEnd, Step: step, Response: response})

		// Check custom stop predicate
		if options.StopPredicate != nil && options.StopPredicate(step, response) {
			a.emitComplete(eventCh, step, response, TerminationCustom)
			return
		}

		// No tool calls = natural completion
		if len(response.ToolCalls) == 0 {
			a.emitComplete(eventCh, step, response, TerminationComplete)
			return
		}

		results := a.processToolCalls(ctx, response.ToolCalls, options, step, eventCh)

		// Append assistant message with tool calls, then the results
		history.Append(ai.Message{
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})
		history.Append(ai.NewToolResultMessage(results...))
	}
}

func (a *Agent) executeStep(ctx context.Context, messages []ai.Message, chatOpts []ai.Option, step int, eventCh chan<- Event) (*ai.Response, error) {
	// Use streaming to emit deltas
	streamCh, err := a.chatClient.ChatStream(ctx, messages, chatOpts...)
	if err != nil {
		return nil, err
	}

	var response *ai.Response
	messageID := fmt.Sprintf("msg_%d_%d", step, time.Now().UnixNano())
	messageStarted := false

	for ev := range streamCh {
		switch ev.Type {
		case event.RunError:
			return nil, ev.Error

		case event.MessageStart:
			// Forward message start with our step-scoped message ID
			event.Emit(eventCh, Event{
				Type:      event.MessageStart,
				Step:      step,
				MessageID: messageID,
			})
			messageStarted = true

		case event.MessageDelta:
			if !messageStarted {
				event.Emit(eventCh, Event{
					Type:      event.MessageStart,
					Step:      step,
					MessageID: messageID,
				})
				messageStarted = true
			}
			event.Emit(eventCh, Event{
				Type:      event.MessageDelta,
				Step:      step,
				MessageID: messageID,
				Delta:     ev.Delta,
			})

		case event.MessageEnd:
			if !messageStarted {
				event.Emit(eventCh, Event{
					Type:      event.MessageStart,
					Step:      step,
					MessageID: messageID,
				})
			}
			event.Emit(eventCh, Event{
				Type:      event.MessageEnd,
				Step:      step,
				MessageID: messageID,
				Response:  ev.Response,
			})
			response = ev.Response
		}
	}

	if response == nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, context.Canceled
	}

	return response, nil
}

func (a *Agent) processToolCalls(ctx context.Context, toolCalls []ai.ToolCall, options *Options, step int, eventCh chan<- Event) []ai.ToolResult {
	for i := range toolCalls {
		tc := toolCalls[i]
		// Emit tool call start (name only) and args (arguments)
		event.Emit(eventCh, Event{Type: event.ToolCallStart, Step: step, ToolCall: &tc})
		event.Emit(eventCh, Event{Type: event.ToolCallArgs, Step: step, ToolCall: &tc})
	}

	if options.ParallelToolCalls && len(toolCalls) > 1 {
		return a.executeToolCallsParallel(ctx, toolCalls, options, step, eventCh)
	}
	return a.executeToolCallsSequential(ctx, toolCalls, options, step, eventCh)
}

func (a *Agent) executeToolCallsSequential(ctx context.Context, toolCalls []ai.ToolCall, options *Options, step int, eventCh chan<- Event) []ai.ToolResult {
	results := make([]ai.ToolResult, len(toolCalls))

	for i, tc := range toolCalls {
		results[i] = a.executeToolCall(ctx, tc, options, step, eventCh)
	}

	return results
}

func (a *Agent) executeToolCallsParallel(ctx context.Context, toolCalls []ai.ToolCall, options *Options, step int, eventCh chan<- Event) []ai.ToolResult {
	results := make([]ai.ToolResult, len(toolCalls))
	var wg sync.WaitGroup

	for i, tc := range toolCalls {
		wg.Add(1)
		go func(idx int, call ai.ToolCall) {
			defer wg.Done()
			results[idx] = a.executeToolCall(ctx, call, options, step, eventCh)
		}(i, tc)
	}

	wg.Wait()
	return results
}

func (a *Agent) executeToolCall(ctx context.Context, tc ai.ToolCall, options *Options, step int, eventCh chan<- Event) ai.ToolResult {
	// Apply handler timeout
	execCtx := ctx
	if options.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, options.HandlerTimeout)
		defer cancel()
	}

	result, err := a.registry.Execute(execCtx, tc)
	if err != nil {
		// Tool not found or other registry error
		result = ai.ToolResult{
			ToolCallID: tc.ID,
			Content:    err.Error(),
			IsError:    true,
		}
	}

	event.Emit(eventCh, Event{Type: event.ToolCallEnd, Step: step, ToolCall: &tc})
	event.Emit(eventCh, Event{Type: event.ToolCallResult, Step: step, ToolCall: &tc, ToolResult: &result})
	return result
}

func (a *Agent) checkTermination(ctx context.Context, step int, options *Options) TerminationReason {
	// Check context cancellation/timeout
	if ctx.Err() != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return TerminationTimeout
		}
		return TerminationCancelled
	}

	// Check max steps (step is 1-indexed, check before executing)
	if options.MaxSteps > 0 && step > options.MaxSteps {
		return TerminationMaxSteps
	}

	return ""
}

func (a *Agent) emitComplete(ch chan<- Event, step int, response *ai.Response, reason TerminationReason) {
	event.Emit(ch, Event{
		Type:     event.RunEnd,
		Step:     step,
		Response: response,
		Message:  string(reason),
	})
}

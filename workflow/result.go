package workflow

import (
	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/event"
)

// Event is the workflow event type, shared with the event package so
// consumers can range over a single stream regardless of source.
type Event = event.Event

// TerminationReason indicates why a workflow stopped.
type TerminationReason string

const (
	// TerminationComplete means all steps finished successfully.
	TerminationComplete TerminationReason = "complete"
	// TerminationError means a step failed and the workflow stopped.
	TerminationError TerminationReason = "error"
	// TerminationTimeout means the workflow deadline was exceeded.
	TerminationTimeout TerminationReason = "timeout"
	// TerminationCancelled means the context was cancelled.
	TerminationCancelled TerminationReason = "cancelled"
)

// StepResult is the outcome of a single step execution.
type StepResult struct {
	// StepName identifies the step that produced this result.
	StepName string
	// Output is the step's primary text output, if any.
	Output string
	// Response is the final model response for LLM-backed steps.
	Response *ai.Response
	// Usage is the token usage accumulated by the step.
	Usage ai.Usage
	// Metadata holds step-specific details.
	Metadata map[string]any
}

// Result is the outcome of a complete workflow run.
type Result struct {
	// WorkflowName identifies the workflow.
	WorkflowName string
	// State is the final shared state after all steps ran.
	State *State
	// Output is the root step's final text output.
	Output string
	// Usage is the total token usage across all steps.
	Usage ai.Usage
	// Termination indicates why the workflow stopped.
	Termination TerminationReason
	// Error is set when Termination is TerminationError.
	Error error
}

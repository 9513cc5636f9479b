// Package wayfinder provides the core types for the Wayfinder travel
// planning assistant: a unified chat abstraction over LLM providers,
// tool-calling primitives, and categorized errors.
//
// Wayfinder plans trips by running a sequence of specialized LLM
// agents, each augmented with web search, and collapsing their output
// into a single travel plan:
//
//	research -> itinerary -> budget -> local insights -> summary
//
// The root package defines the provider-neutral vocabulary:
//
//   - [Message], [Response], [Usage]: conversation turns and results
//   - [Tool], [ToolCall], [ToolResult]: model-invocable functions
//   - [ChatProvider]: the interface every provider adapter implements
//   - [Options]: functional options for chat requests
//   - Categorized errors for retry decisions
//
// Higher layers build on these types:
//
//   - [github.com/wayfinder-ai/wayfinder/client]: unified multi-provider client
//   - [github.com/wayfinder-ai/wayfinder/agent]: autonomous tool-calling loop
//   - [github.com/wayfinder-ai/wayfinder/workflow]: sequential pipelines
//   - [github.com/wayfinder-ai/wayfinder/planner]: the travel planning domain
package wayfinder

// Package workflow provides composable patterns for orchestrating
// multi-step AI pipelines.
//
// A workflow is a named tree of steps sharing a mutable State. The
// package ships three step kinds:
//   - FuncStep: plain Go functions for setup and transformation
//   - PromptStep: a single LLM call with a state-derived prompt
//   - AgentStep: an autonomous tool-calling agent run to completion
//
// Steps compose through Chain, which runs them sequentially and
// threads state between them. A typical pipeline:
//
//	chain := workflow.NewChain("trip-plan",
//	    workflow.NewAgentStep("research", client, registry, researchPrompt, "research", nil),
//	    workflow.NewAgentStep("itinerary", client, registry, itineraryPrompt, "itinerary", nil),
//	    workflow.NewPromptStep("summary", client, summaryPrompt, "summary"),
//	)
//	wf := workflow.New("planner", chain)
//	result, err := wf.Run(ctx, workflow.NewStateFrom(map[string]any{"destination": "Kyoto"}))
//
// RunStream returns the same execution as a live event stream for
// progressive display.
package workflow

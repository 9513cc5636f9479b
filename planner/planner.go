// Package planner builds AI travel plans through a five-stage pipeline:
// research, itinerary, budget, local insights, and a final summary. The
// first four stages run tool-calling agents with web search; the summary
// stage is a direct model call over the accumulated results.
package planner

import (
	"context"
	"time"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/agent"
	"github.com/wayfinder-ai/wayfinder/chat"
	"github.com/wayfinder-ai/wayfinder/search"
	"github.com/wayfinder-ai/wayfinder/tool"
	"github.com/wayfinder-ai/wayfinder/workflow"
)

// Stage names, which double as state keys for each stage's output.
const (
	StageResearch      = "research"
	StageItinerary     = "itinerary"
	StageBudget        = "budget"
	StageLocalInsights = "local_insights"
	StageSummary       = "summary"
)

// Stages lists the pipeline stages in execution order.
var Stages = []string{StageResearch, StageItinerary, StageBudget, StageLocalInsights, StageSummary}

// Plan is the assembled output of a full pipeline run.
type Plan struct {
	Request       TripRequest `json:"request"`
	Research      string      `json:"research"`
	Itinerary     string      `json:"itinerary"`
	Budget        string      `json:"budget"`
	LocalInsights string      `json:"local_insights"`
	Summary       string      `json:"summary"`
	Usage         ai.Usage    `json:"usage"`
	GeneratedAt   time.Time   `json:"generated_at"`
}

// Planner runs the travel planning pipeline.
type Planner struct {
	chatClient chat.Client
	registry   *tool.Registry
	personas   *Personas
	options    *Options
}

// Options configures pipeline execution.
type Options struct {
	// MaxAgentSteps caps model iterations per agent stage.
	MaxAgentSteps int
	// StageTimeout bounds each stage.
	StageTimeout time.Duration
	// ChatOptions are passed to every model call.
	ChatOptions []ai.Option
}

// Option is a functional option for the planner.
type Option func(*Options)

// WithMaxAgentSteps caps model iterations per agent stage.
func WithMaxAgentSteps(n int) Option {
	return func(o *Options) { o.MaxAgentSteps = n }
}

// WithStageTimeout bounds each pipeline stage.
func WithStageTimeout(d time.Duration) Option {
	return func(o *Options) { o.StageTimeout = d }
}

// WithChatOptions passes options to every model call.
func WithChatOptions(opts ...ai.Option) Option {
	return func(o *Options) { o.ChatOptions = append(o.ChatOptions, opts...) }
}

// New creates a planner backed by the given chat client and search
// provider. The search provider powers the web_search tool available
// to the four agent stages.
func New(chatClient chat.Client, searchProvider search.Provider, opts ...Option) (*Planner, error) {
	personas, err := LoadPersonas()
	if err != nil {
		return nil, err
	}

	registry := tool.NewRegistry()
	searchTool, handler := tool.NewWebSearchTool(searchProvider)
	if err := registry.Register(searchTool, handler); err != nil {
		return nil, err
	}

	options := &Options{
		MaxAgentSteps: 5,
		StageTimeout:  5 * time.Minute,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Planner{
		chatClient: chatClient,
		registry:   registry,
		personas:   personas,
		options:    options,
	}, nil
}

// Registry exposes the planner's tool registry, e.g. for serving the
// same tools over MCP.
func (p *Planner) Registry() *tool.Registry {
	return p.registry
}

// Run executes the full pipeline and returns the assembled plan.
func (p *Planner) Run(ctx context.Context, req TripRequest) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wf := p.buildWorkflow(req)
	state := workflow.NewState()

	result, err := wf.Run(ctx, state, p.workflowOpts()...)
	if err != nil {
		return nil, err
	}

	plan := planFromState(req, state)
	plan.Usage = result.Usage
	return plan, nil
}

// RunStream executes the pipeline and returns a live event stream plus
// the shared state. The state is complete once the channel closes;
// assemble the plan from it with PlanFromState.
func (p *Planner) RunStream(ctx context.Context, req TripRequest) (<-chan workflow.Event, *workflow.State, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	wf := p.buildWorkflow(req)
	state := workflow.NewState()
	return wf.RunStream(ctx, state, p.workflowOpts()...), state, nil
}

// PlanFromState assembles a plan from a finished pipeline state.
func PlanFromState(req TripRequest, state *workflow.State) *Plan {
	return planFromState(req, state)
}

func planFromState(req TripRequest, state *workflow.State) *Plan {
	return &Plan{
		Request:       req,
		Research:      state.GetString(StageResearch),
		Itinerary:     state.GetString(StageItinerary),
		Budget:        state.GetString(StageBudget),
		LocalInsights: state.GetString(StageLocalInsights),
		Summary:       state.GetString(StageSummary),
		GeneratedAt:   time.Now(),
	}
}

func (p *Planner) workflowOpts() []workflow.Option {
	opts := []workflow.Option{
		workflow.WithStepTimeout(p.options.StageTimeout),
	}
	if len(p.options.ChatOptions) > 0 {
		opts = append(opts, workflow.WithChatOptions(p.options.ChatOptions...))
	}
	return opts
}

func (p *Planner) buildWorkflow(req TripRequest) *workflow.Workflow {
	agentOpts := []agent.Option{agent.WithMaxSteps(p.options.MaxAgentSteps)}

	chain := workflow.NewChain("travel-plan",
		p.agentStage(StageResearch, p.personas.Researcher, researchQuery(req), agentOpts),
		p.agentStage(StageItinerary, p.personas.Itinerary, itineraryQuery(req), agentOpts),
		p.agentStage(StageBudget, p.personas.Budget, budgetQuery(req), agentOpts),
		p.agentStage(StageLocalInsights, p.personas.Local, localQuery(req), agentOpts),
		p.summaryStage(),
	)

	return workflow.New("planner", chain)
}

// agentStage builds a tool-calling stage. The query is fixed at build
// time; only the summary stage reads prior outputs from state.
func (p *Planner) agentStage(name string, persona Persona, query string, agentOpts []agent.Option) workflow.Step {
	return workflow.NewAgentStep(
		name,
		p.chatClient,
		p.registry,
		func(_ *workflow.State) []ai.Message {
			return buildPrompt(persona, query)
		},
		name,
		agentOpts,
	)
}

// summaryStage is a direct model call without tools, combining the four
// stage outputs into the final plan.
func (p *Planner) summaryStage() workflow.Step {
	return workflow.NewPromptStep(
		StageSummary,
		p.chatClient,
		func(s *workflow.State) []ai.Message {
			query := summaryQuery(
				s.GetString(StageResearch),
				s.GetString(StageItinerary),
				s.GetString(StageBudget),
				s.GetString(StageLocalInsights),
			)
			return buildPrompt(p.personas.Summarizer, query)
		},
		StageSummary,
	)
}

package planner

import (
	"context"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/tool"
)

// PlanToolName is the tool name the model (or MCP client) sees for
// generating a full travel plan.
const PlanToolName = "generate_travel_plan"

// planToolArgs mirrors TripRequest for tool invocation.
type planToolArgs struct {
	Origin      string `json:"origin" desc:"Departure city, e.g. \"New York, NY\"" required:"true"`
	Destination string `json:"destination" desc:"Destination city, e.g. \"Paris, France\"" required:"true"`
	StartDate   string `json:"start_date" desc:"Trip start date in YYYY-MM-DD format" required:"true"`
	EndDate     string `json:"end_date" desc:"Trip end date in YYYY-MM-DD format" required:"true"`
	Budget      string `json:"budget" desc:"Total budget, e.g. \"$2000 USD\"" required:"true"`
	Interests   string `json:"interests" desc:"Comma-separated interests, e.g. \"museums, food, hiking\"" required:"true"`
}

// NewPlanTool exposes the full pipeline as a single tool: the handler
// runs all five stages and returns the rendered plan text.
func NewPlanTool(p *Planner) (ai.Tool, tool.Handler) {
	return tool.MustBind(PlanToolName,
		"Generate a complete AI travel plan: research, itinerary, budget analysis, local insights, and a summary.",
		func(ctx context.Context, args planToolArgs) (string, error) {
			req := TripRequest{
				Origin:      args.Origin,
				Destination: args.Destination,
				StartDate:   args.StartDate,
				EndDate:     args.EndDate,
				Budget:      args.Budget,
				Interests:   args.Interests,
			}
			plan, err := p.Run(ctx, req)
			if err != nil {
				return "", err
			}
			return plan.Text(), nil
		})
}

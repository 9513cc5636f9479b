package model

import ai "github.com/wayfinder-ai/wayfinder"

// ChatPricing contains pricing per million tokens (USD) for chat models.
type ChatPricing struct {
	// InputPerMillion is the standard input token pricing.
	InputPerMillion float64
	// OutputPerMillion is the standard output token pricing.
	OutputPerMillion float64
}

// CalculateCost returns the estimated cost in USD for the given usage
// at the given pricing.
func CalculateCost(usage ai.Usage, pricing ChatPricing) float64 {
	input := float64(usage.InputTokens) / 1_000_000 * pricing.InputPerMillion
	output := float64(usage.OutputTokens) / 1_000_000 * pricing.OutputPerMillion
	return input + output
}

// Package model provides the catalog of chat models available to the
// planner, with per-token pricing for run cost estimates.
package model

import ai "github.com/wayfinder-ai/wayfinder"

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id       string
	provider ai.Provider
	pricing  ChatPricing
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// Pricing returns the pricing for this model.
func (m ChatModel) Pricing() ChatPricing { return m.pricing }

// Cost returns the estimated cost in USD for the given usage.
func (m ChatModel) Cost(usage ai.Usage) float64 {
	return CalculateCost(usage, m.pricing)
}

// Google Gemini Models
// Model pricing last verified: December 14, 2025
var (
	Gemini25Pro       = ChatModel{id: "gemini-2.5-pro", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}}
	Gemini25Flash     = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.15, OutputPerMillion: 0.60}}
	Gemini25FlashLite = ChatModel{id: "gemini-2.5-flash-lite", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.075, OutputPerMillion: 0.30}}
	Gemini20Flash     = ChatModel{id: "gemini-2.0-flash", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.10, OutputPerMillion: 0.40}}

	// DefaultGeminiModel is the recommended default Google model.
	DefaultGeminiModel = Gemini25Flash
)

// Anthropic Claude Models
// Model pricing last verified: December 14, 2025
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 5.00, OutputPerMillion: 25.00}}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 1.00, OutputPerMillion: 5.00}}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeSonnet45
)

// OpenAI GPT Models
// Model pricing last verified: December 14, 2025
var (
	GPT52    = ChatModel{id: "gpt-5.2", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 1.75, OutputPerMillion: 14.00}}
	GPT51    = ChatModel{id: "gpt-5.1", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}}
	GPT5Mini = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.25, OutputPerMillion: 1.00}}

	// DefaultGPTModel is the recommended default OpenAI model.
	DefaultGPTModel = GPT52
)

// allModels indexes every known model by API identifier.
var allModels = func() map[string]ChatModel {
	models := []ChatModel{
		Gemini25Pro, Gemini25Flash, Gemini25FlashLite, Gemini20Flash,
		ClaudeOpus45, ClaudeSonnet45, ClaudeHaiku45,
		GPT52, GPT51, GPT5Mini,
	}
	index := make(map[string]ChatModel, len(models))
	for _, m := range models {
		index[m.id] = m
	}
	return index
}()

// Lookup returns the catalog model with the given API identifier.
func Lookup(id string) (ChatModel, bool) {
	m, ok := allModels[id]
	return m, ok
}

// DefaultFor returns the recommended default model for a provider.
func DefaultFor(provider ai.Provider) (ChatModel, bool) {
	switch provider {
	case ai.ProviderGoogle:
		return DefaultGeminiModel, true
	case ai.ProviderAnthropic:
		return DefaultClaudeModel, true
	case ai.ProviderOpenAI:
		return DefaultGPTModel, true
	default:
		return ChatModel{}, false
	}
}

var _ ai.Model = ChatModel{}

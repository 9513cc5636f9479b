package wayfinder

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderGoogle    Provider = "google"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// Model identifies a chat model and the provider that serves it.
// Concrete model values live in the model package.
type Model interface {
	// String returns the API identifier for the model.
	String() string
	// Provider returns which provider serves this model.
	Provider() Provider
}

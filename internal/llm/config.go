// Package llm provides the text-generation client used to draft tailored
// resume content, behind a provider-agnostic interface.
package llm

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the generation configuration. The sampling parameters are a
// compatibility surface: the downstream extractor was tuned against output
// produced at these settings.
type Config struct {
	Provider        Provider
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     0.3,
		TopP:            0.9,
		MaxOutputTokens: 3500,
	}
}

// WithModel returns a copy of the config with a different model name.
func (c *Config) WithModel(model string) *Config {
	copied := *c
	copied.Model = model
	return &copied
}

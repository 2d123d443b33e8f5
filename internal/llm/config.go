// Package llm wraps the Gemini client used for skill-gap suggestions behind
// a tiered model configuration, so suggestion quality and cost can be tuned
// without touching callers.
package llm

// ModelTier names how much reasoning a call needs. Suggestions run on the
// standard tier; the lite tier exists for cheap classification work and the
// advanced tier for long-document reasoning.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured output, suggestion generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning over long documents
	TierAdvanced ModelTier = "advanced"
)

// Provider names an LLM vendor. Only Gemini is wired today; the others are
// reserved values so stored configs stay valid if a second provider lands.
type Provider string

const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// Config maps tiers to concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the Gemini models the suggestion pipeline is
// tested against.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, walking down to standard then
// lite when the requested tier is not configured. Returns "" only when no
// tier is configured at all.
func (c *Config) GetModel(tier ModelTier) string {
	for _, candidate := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[candidate]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden, leaving
// the receiver untouched.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models}
}

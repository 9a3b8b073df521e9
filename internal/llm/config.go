package llm

// ModelTier represents the complexity/capability level of a model.
type ModelTier string

const (
	// TierLite is for quick structured calls: transferability and validation
	// analyses with small prompts.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: cultural fit and learning
	// potential assessments.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a given tier, falling back to lite when
// the tier is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

package config

import (
	"fmt"
	"strings"

	"github.com/japaniel/lyricvocab/pkg/vocab"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if err := c.Extract.validate(); err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if c.NeedsLLM() {
		if err := c.LLM.validate(); err != nil {
			return fmt.Errorf("llm: %w", err)
		}
	}

	if c.Translate.BatchSize <= 0 {
		return fmt.Errorf("translate.batch_size must be > 0 (got %d)", c.Translate.BatchSize)
	}
	if c.Translate.Workers <= 0 {
		return fmt.Errorf("translate.workers must be > 0 (got %d)", c.Translate.Workers)
	}

	return nil
}

// NeedsLLM reports whether the configured source calls a text-generation model.
func (c *Config) NeedsLLM() bool {
	return c.Extract.Source == SourceLLM || c.Extract.Source == SourceCombined
}

func (e *ExtractConfig) validate() error {
	if _, err := vocab.ParseLevel(e.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	switch e.Source {
	case SourceHeuristic, SourceLLM, SourceCombined:
	default:
		return fmt.Errorf("source must be one of heuristic, llm, combined (got %q)", e.Source)
	}
	if e.MaxItems < 0 {
		return fmt.Errorf("max_items must be >= 0 (got %d)", e.MaxItems)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case ProviderAnthropic:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %s", l.Provider)
		}
	case ProviderOpenAI:
		if l.BaseURL == "" {
			return fmt.Errorf("base_url is required for provider %s", l.Provider)
		}
	default:
		return fmt.Errorf("provider must be anthropic or openai (got %q)", l.Provider)
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	return nil
}

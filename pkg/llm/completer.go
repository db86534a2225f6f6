// Package llm talks to text-generation models: it proposes vocabulary
// candidates, translates terms and guesses the language of a song.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/japaniel/lyricvocab/pkg/config"
)

// ErrEmptyResponse is returned when a model answers with no text.
var ErrEmptyResponse = errors.New("empty response from LLM")

// Completer sends one system+user prompt pair and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, system, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

// New returns the Completer for cfg.Provider.
func New(cfg config.LLMConfig) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("llm: api key is required for %s", cfg.Provider)
		}
		return NewAnthropicCompleter(cfg), nil
	case config.ProviderOpenAI:
		return NewChatCompleter(cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const translateSystem = "You are a precise translator producing flashcard glosses."

// Translator asks a model for one gloss per term. It satisfies
// translate.Translator; the caller deals with short or padded replies.
type Translator struct {
	Completer Completer
}

func NewTranslator(c Completer) *Translator {
	return &Translator{Completer: c}
}

func (t *Translator) Translate(ctx context.Context, terms []string, target string) ([]string, error) {
	if len(terms) == 0 {
		return []string{}, nil
	}
	termsJSON, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("marshal terms: %w", err)
	}

	prompt := fmt.Sprintf(`Translate each term in the JSON array below into %s.
Return ONLY a JSON array of strings with exactly %d entries, in the same order.
Use the most common sense of each word; keep each entry short.

%s`, target, len(terms), termsJSON)

	reply, err := t.Completer.Complete(ctx, translateSystem, prompt)
	if err != nil {
		return nil, fmt.Errorf("translate %d terms: %w", len(terms), err)
	}

	var out []string
	err = decodeLenient(reply, func(b []byte) error {
		var wrapped struct {
			Translations []string `json:"translations"`
		}
		if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.Translations != nil {
			out = wrapped.Translations
			return nil
		}
		return json.Unmarshal(b, &out)
	})
	if err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out, nil
}

package llm

import (
	"context"
	"strings"
)

const detectSample = 600

// DetectLanguage returns the English name of the language the lyrics are
// written in, or "" when the model is unsure.
func DetectLanguage(ctx context.Context, c Completer, lyrics string) (string, error) {
	sample := []rune(strings.TrimSpace(lyrics))
	if len(sample) == 0 {
		return "", nil
	}
	if len(sample) > detectSample {
		sample = sample[:detectSample]
	}

	reply, err := c.Complete(ctx,
		"You identify languages.",
		"Which language are these song lyrics written in? Answer with the English name of the language only, or \"unknown\".\n\n"+string(sample))
	if err != nil {
		return "", err
	}

	label := strings.Trim(strings.TrimSpace(reply), ".\"'`")
	if label == "" || strings.EqualFold(label, "unknown") || strings.ContainsAny(label, "\n{[") {
		return "", nil
	}
	return label, nil
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/japaniel/lyricvocab/pkg/vocab"
)

const extractSystem = "You are an experienced language teacher who picks vocabulary from song lyrics for learners."

// Extractor asks a model for vocabulary candidates. It satisfies
// extract.CandidateGenerator.
type Extractor struct {
	Completer Completer
	Logger    *slog.Logger
}

// NewExtractor creates an Extractor that logs to slog.Default.
func NewExtractor(c Completer) *Extractor {
	return &Extractor{Completer: c}
}

func (e *Extractor) Generate(ctx context.Context, req vocab.Request) ([]vocab.Candidate, error) {
	reply, err := e.Completer.Complete(ctx, extractSystem, buildExtractPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("generate candidates: %w", err)
	}

	cands, err := parseCandidates(reply)
	if err != nil {
		return nil, fmt.Errorf("parse candidates: %w", err)
	}
	for i, c := range cands {
		if strings.TrimSpace(c.DisplayText) == "" {
			return nil, fmt.Errorf("candidate %d: empty word", i)
		}
		if !c.Band.IsValid() {
			return nil, fmt.Errorf("candidate %d (%q): invalid difficultyBand %q", i, c.DisplayText, c.Band)
		}
	}

	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("llm candidates", slog.Int("count", len(cands)), slog.String("level", req.Level.String()))
	return cands, nil
}

func buildExtractPrompt(req vocab.Request) string {
	lang := "the language the lyrics are written in"
	if req.SourceLanguage != "" {
		lang = req.SourceLanguage
	}
	return fmt.Sprintf(`Pick vocabulary worth studying from the song lyrics below for a learner at CEFR level %s.
The lyrics are in %s.

Skip words the learner certainly knows at that level. For each word give:
- "word": the word as it should appear on a flashcard
- "difficultyBand": one of "comfortable", "stretch", "challenging" relative to level %s
- "explanation": one short sentence on meaning or usage
- "example": the lyric line where it appears, copied verbatim

Output ONLY a JSON object of the form {"items": [ ... ]}, no markdown, no commentary.

Lyrics:
%s`, req.Level, lang, req.Level, req.Lyrics)
}

type candidateEnvelope struct {
	Items []vocab.Candidate `json:"items"`
}

// parseCandidates accepts {"items": [...]} or a bare array.
func parseCandidates(reply string) ([]vocab.Candidate, error) {
	var out []vocab.Candidate
	err := decodeLenient(reply, func(b []byte) error {
		var env candidateEnvelope
		if err := json.Unmarshal(b, &env); err == nil && env.Items != nil {
			out = env.Items
			return nil
		}
		var list []vocab.Candidate
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

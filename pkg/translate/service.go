// Package translate attaches translations to learning items through an
// external translation collaborator.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/japaniel/lyricvocab/pkg/vocab"
)

// Translator returns translations in the same order as terms. A result of a
// different length is tolerated; the missing positions are reported per item.
type Translator interface {
	Translate(ctx context.Context, terms []string, target string) ([]string, error)
}

// Service fans a list of items out to a Translator in chunks. A failing chunk
// only affects its own items.
type Service struct {
	Translator Translator
	BatchSize  int
	Workers    int
	Logger     *slog.Logger
}

// NewService creates a Service with default concurrency settings.
func NewService(t Translator) *Service {
	return &Service{
		Translator: t,
		BatchSize:  25,
		Workers:    4,
	}
}

type span struct{ start, end int }

// Apply returns a copy of items where each entry carries either a Translation
// or a TranslationError. The input slice is not modified. Only invalid
// arguments produce an error.
func (s *Service) Apply(ctx context.Context, items []vocab.LearningItem, target string) ([]vocab.LearningItem, error) {
	if s.Translator == nil {
		return nil, errors.New("translate: no translator configured")
	}
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("translate: %w", vocab.ErrMissingLanguage)
	}

	out := slices.Clone(items)
	if len(out) == 0 {
		return out, nil
	}

	size := s.BatchSize
	if size <= 0 {
		size = len(out)
	}
	var spans []span
	for start := 0; start < len(out); start += size {
		spans = append(spans, span{start, min(start+size, len(out))})
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	done := make([]bool, len(spans))
	wp := NewWorkerPool(s.Workers, len(spans))
	wp.Start(ctx)

	for i, sp := range spans {
		job := func(ctx context.Context) error {
			chunk := out[sp.start:sp.end]
			terms := make([]string, len(chunk))
			for j, it := range chunk {
				terms[j] = it.Word
			}
			got, err := s.Translator.Translate(ctx, terms, target)
			if err != nil {
				logger.Warn("translation chunk failed",
					slog.Int("first", sp.start),
					slog.Int("size", len(chunk)),
					slog.String("error", err.Error()),
				)
			} else if len(got) != len(terms) {
				logger.Warn("translation length mismatch",
					slog.Int("first", sp.start),
					slog.Int("want", len(terms)),
					slog.Int("got", len(got)),
				)
			}
			assign(chunk, got, err)
			done[i] = true
			return err
		}
		if err := wp.SubmitCtx(ctx, job); err != nil {
			break
		}
	}
	// Close waits for the workers, so done and out are safe to read below.
	wp.Close()

	for i, sp := range spans {
		if done[i] {
			continue
		}
		reason := ctx.Err()
		if reason == nil {
			reason = errors.New("translation not attempted")
		}
		assign(out[sp.start:sp.end], nil, reason)
	}
	return out, nil
}

func assign(chunk []vocab.LearningItem, got []string, err error) {
	for i := range chunk {
		chunk[i].Translation = ""
		chunk[i].TranslationError = ""
		switch {
		case err != nil:
			chunk[i].TranslationError = err.Error()
		case i < len(got) && strings.TrimSpace(got[i]) != "":
			chunk[i].Translation = strings.TrimSpace(got[i])
		default:
			chunk[i].TranslationError = vocab.ErrTranslationMissing.Error()
		}
	}
}

// Stub is a Translator that never produces translations. Every item ends up
// marked as missing, which keeps offline runs and exports well-formed.
type Stub struct{}

func (Stub) Translate(ctx context.Context, terms []string, target string) ([]string, error) {
	return []string{}, nil
}

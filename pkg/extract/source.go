package extract

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/japaniel/lyricvocab/pkg/vocab"
)

// Source produces learning items for a request.
type Source interface {
	Extract(ctx context.Context, req vocab.Request) ([]vocab.LearningItem, error)
}

// CandidateGenerator is a text-generation collaborator that proposes items
// with a band already decided.
type CandidateGenerator interface {
	Generate(ctx context.Context, req vocab.Request) ([]vocab.Candidate, error)
}

// HeuristicSource runs the local pipeline.
type HeuristicSource struct {
	Pipeline *Pipeline
	Logger   *slog.Logger
}

func (h HeuristicSource) Extract(ctx context.Context, req vocab.Request) ([]vocab.LearningItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := h.Pipeline
	if p == nil {
		p = NewPipeline(nil)
	}
	items, diag := p.Extract(req.Lyrics, req.Level)
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("heuristic extraction",
		slog.String("level", req.Level.String()),
		slog.Int("scanned", diag.Scanned),
		slog.Int("stop_words", diag.StopWord),
		slog.Int("digits", diag.Digits),
		slog.Int("too_easy", diag.TooEasy),
		slog.Int("accepted", diag.Accepted),
		slog.Int("unique", diag.Unique),
	)
	return items, nil
}

// CollaboratorSource adapts a CandidateGenerator. A generator failure or any
// malformed candidate fails the whole run; no partial list is returned.
// Candidate words are canonicalized like lyric tokens; stop words are dropped.
type CollaboratorSource struct {
	Generator CandidateGenerator
	// StopWords defaults to DefaultStopWords when nil.
	StopWords map[string]struct{}
}

func (c CollaboratorSource) Extract(ctx context.Context, req vocab.Request) ([]vocab.LearningItem, error) {
	cands, err := c.Generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vocab.ErrExtraction, err)
	}

	stop := c.StopWords
	if stop == nil {
		stop = DefaultStopWords()
	}

	threshold := req.Level.Threshold()
	seen := make(map[string]struct{}, len(cands))
	items := make([]vocab.LearningItem, 0, len(cands))
	for i, cand := range cands {
		if !cand.Band.IsValid() {
			return nil, fmt.Errorf("%w: candidate %d: invalid band %q", vocab.ErrExtraction, i, cand.Band)
		}
		it := vocab.FromCandidate(cand, threshold)
		if it.Word == "" {
			return nil, fmt.Errorf("%w: candidate %d: no word in %q", vocab.ErrExtraction, i, cand.DisplayText)
		}
		if _, ok := stop[it.Word]; ok {
			continue
		}
		if _, dup := seen[it.Word]; dup {
			continue
		}
		seen[it.Word] = struct{}{}
		items = append(items, it)
	}
	vocab.Rank(items)
	return items, nil
}

// CombinedSource runs a primary and a secondary source concurrently. Items
// from Primary win when both report the same word; words only the secondary
// found are added before the final ranking. Either failure fails the run.
type CombinedSource struct {
	Primary   Source
	Secondary Source
}

func (c CombinedSource) Extract(ctx context.Context, req vocab.Request) ([]vocab.LearningItem, error) {
	var primary, secondary []vocab.LearningItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = c.Primary.Extract(gctx, req)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = c.Secondary.Extract(gctx, req)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeItems(primary, secondary), nil
}

func mergeItems(primary, secondary []vocab.LearningItem) []vocab.LearningItem {
	out := make([]vocab.LearningItem, 0, len(primary)+len(secondary))
	// Both sources derive ID from the canonical word.
	seen := make(map[string]struct{}, len(primary))
	for _, it := range primary {
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	for _, it := range secondary {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	vocab.Rank(out)
	return out
}

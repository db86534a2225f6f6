// Package extract turns lyrics into a ranked list of vocabulary items.
package extract

import (
	"unicode"

	"github.com/japaniel/lyricvocab/pkg/difficulty"
	"github.com/japaniel/lyricvocab/pkg/lyrics"
	"github.com/japaniel/lyricvocab/pkg/vocab"
)

// Diagnostics counts what happened to every token of one run.
type Diagnostics struct {
	Scanned  int
	Empty    int
	StopWord int
	Digits   int
	TooEasy  int
	Accepted int
	// Unique is the number of distinct accepted words.
	Unique int
}

// Pipeline is the heuristic extractor. A Pipeline holds no per-run state and
// may be shared between goroutines as long as its fields are not modified.
type Pipeline struct {
	Scorer    *difficulty.Scorer
	StopWords map[string]struct{}
	// Tracer receives one event per token. nil disables tracing.
	Tracer Tracer

	analyzer *lyrics.Analyzer
}

// NewPipeline creates a Pipeline with the default stop words. A nil scorer
// means the built-in frequency table.
func NewPipeline(scorer *difficulty.Scorer) *Pipeline {
	if scorer == nil {
		scorer = difficulty.NewScorer(nil)
	}
	return &Pipeline{
		Scorer:    scorer,
		StopWords: DefaultStopWords(),
		analyzer:  lyrics.NewAnalyzer(),
	}
}

// Extract scores every token of text against the level threshold and returns
// the words above it, ranked by score then count. Empty input gives an empty
// result; it is not an error.
func (p *Pipeline) Extract(text string, level vocab.Level) ([]vocab.LearningItem, Diagnostics) {
	threshold := level.Threshold()
	analyzer := p.analyzer
	if analyzer == nil {
		analyzer = lyrics.NewAnalyzer()
	}

	var diag Diagnostics
	seen := make(map[string]int)
	var items []vocab.LearningItem

	for _, sent := range analyzer.AnalyzeDocument(text) {
		for _, tok := range sent.Tokens {
			diag.Scanned++
			ev := Event{Example: sent.Text, Token: tok.Surface, Canonical: tok.Canonical}

			switch {
			case !tok.IsWord():
				ev.Outcome = OutcomeEmpty
				diag.Empty++
			case p.isStopWord(tok.Canonical):
				ev.Outcome = OutcomeStopWord
				diag.StopWord++
			case hasDigit(tok.Canonical):
				ev.Outcome = OutcomeDigits
				diag.Digits++
			default:
				ev.Score = p.Scorer.Score(tok.Canonical)
				if ev.Score <= float64(threshold) {
					ev.Outcome = OutcomeTooEasy
					diag.TooEasy++
					break
				}
				ev.Outcome = OutcomeAccepted
				diag.Accepted++
				if i, ok := seen[tok.Canonical]; ok {
					items[i].Observe()
				} else {
					seen[tok.Canonical] = len(items)
					items = append(items, vocab.NewItem(tok.Canonical, ev.Score, threshold, sent.Text))
				}
			}
			p.trace(ev)
		}
	}

	diag.Unique = len(items)
	vocab.Rank(items)
	return items, diag
}

func (p *Pipeline) isStopWord(word string) bool {
	_, ok := p.StopWords[word]
	return ok
}

func (p *Pipeline) trace(ev Event) {
	if p.Tracer != nil {
		p.Tracer.Trace(ev)
	}
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

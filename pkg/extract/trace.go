package extract

import (
	"context"
	"log/slog"
)

// Outcome is the fate of a single token.
type Outcome string

const (
	OutcomeEmpty    Outcome = "empty"
	OutcomeStopWord Outcome = "stop word"
	OutcomeDigits   Outcome = "contains digits"
	OutcomeTooEasy  Outcome = "too easy"
	OutcomeAccepted Outcome = "accepted"
)

// Event reports one token decision. Score is zero unless the token reached
// the scorer.
type Event struct {
	Example   string
	Token     string
	Canonical string
	Outcome   Outcome
	Score     float64
}

// Tracer observes token decisions. Implementations must not retain the
// pipeline or block for long; Trace is called inline.
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(Event)

func (f TracerFunc) Trace(ev Event) { f(ev) }

// SlogTracer logs every event at debug level.
func SlogTracer(logger *slog.Logger) Tracer {
	if logger == nil {
		logger = slog.Default()
	}
	return TracerFunc(func(ev Event) {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs := []any{
			slog.String("token", ev.Token),
			slog.String("canonical", ev.Canonical),
			slog.String("outcome", string(ev.Outcome)),
			slog.String("example", ev.Example),
		}
		if ev.Outcome == OutcomeTooEasy || ev.Outcome == OutcomeAccepted {
			attrs = append(attrs, slog.Float64("score", ev.Score))
		}
		logger.Debug("token", attrs...)
	})
}

package lyrics

import (
	"strings"
)

// Version returns the current version of the package.
func Version() string { return "0.2.0" }

// Token represents a single whitespace-delimited unit of an example.
type Token struct {
	Surface   string // The text as it appears (e.g. "Troubles,")
	Canonical string // The normalized form (e.g. "troubles"); "" when not a word
}

// IsWord reports whether the token normalized to something usable.
func (t Token) IsWord() bool { return t.Canonical != "" }

// Sentence is an example unit together with its tokens.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Analyzer segments lyrics and normalizes tokens.
type Analyzer struct {
	normalize func(string) string
}

// NewAnalyzer creates an analyzer using Normalize.
func NewAnalyzer() *Analyzer {
	return &Analyzer{normalize: Normalize}
}

// Analyze tokenizes a single example unit.
func (a *Analyzer) Analyze(example string) []Token {
	fields := Tokenize(example)
	result := make([]Token, 0, len(fields))
	for _, f := range fields {
		result = append(result, Token{
			Surface:   f,
			Canonical: a.normalize(f),
		})
	}
	return result
}

// AnalyzeDocument splits the text into example units and tokenizes each one.
// Units keep their input order.
func (a *Analyzer) AnalyzeDocument(text string) []Sentence {
	units := Segment(text)
	result := make([]Sentence, 0, len(units))
	for _, u := range units {
		result = append(result, Sentence{
			Text:   u,
			Tokens: a.Analyze(u),
		})
	}
	return result
}

// Segment splits lyrics on line breaks and sentence-ending punctuation.
// Units are trimmed; empty ones are dropped.
func Segment(text string) []string {
	var units []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			units = append(units, s)
		}
		current.Reset()
	}

	for _, r := range text {
		switch r {
		case '\n', '\r', '.', '!', '?':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return units
}

// Tokenize splits an example unit on runs of whitespace.
func Tokenize(example string) []string {
	return strings.Fields(example)
}

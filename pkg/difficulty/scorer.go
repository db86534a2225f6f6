// Package difficulty estimates how hard a canonical word is for a learner.
//
// The estimate is an additive point system, not a statistical model: the
// same word always gets the same score.
package difficulty

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/japaniel/lyricvocab/pkg/frequency"
)

// Point values of the structural signals.
const (
	longWordLen     = 10
	veryLongWordLen = 12
	manySyllables   = 4
	mostSyllables   = 5
	lengthPoint     = 1.0
	syllablePoint   = 1.0
	suffixPoint     = 1.0
	clusterPoint    = 0.5
)

// abstractSuffixes are end-anchored: "unconditionally" does not match -tion.
var abstractSuffixes = []string{
	"tion", "sion", "ment", "less", "ship", "ance", "ence", "ious",
	"eous", "tive", "ward", "wise", "ism", "ity", "ness",
}

// complexClusters match anywhere in the word.
var complexClusters = []string{"ph", "que", "rh", "zh", "ch", "sh", "x", "z"}

// Breakdown lists every increment that contributed to a score.
type Breakdown struct {
	Word      string
	Tier      int
	Syllables int
	Base      float64
	Length    float64
	Syllable  float64
	Suffix    float64
	Cluster   float64
	Total     float64
}

// Scorer combines a frequency tier with structural signals.
type Scorer struct {
	classifier frequency.Classifier
}

// NewScorer returns a scorer backed by c. A nil classifier means the
// built-in table.
func NewScorer(c frequency.Classifier) *Scorer {
	if c == nil {
		c = frequency.Default()
	}
	return &Scorer{classifier: c}
}

// Score returns the rounded difficulty of a canonical word.
func (s *Scorer) Score(word string) float64 {
	return s.Explain(word).Total
}

// Tier exposes the classifier's tier for word.
func (s *Scorer) Tier(word string) int {
	return s.classifier.Tier(word)
}

// Explain scores word and reports each increment.
func (s *Scorer) Explain(word string) Breakdown {
	b := Breakdown{Word: word, Tier: s.classifier.Tier(word)}

	// Tier 1 adds nothing; an unlisted word adds 4.
	b.Base = float64(b.Tier - frequency.MostCommon)

	n := utf8.RuneCountInString(word)
	if n >= longWordLen {
		b.Length += lengthPoint
	}
	if n >= veryLongWordLen {
		b.Length += lengthPoint
	}

	b.Syllables = CountSyllables(word)
	if b.Syllables >= manySyllables {
		b.Syllable += syllablePoint
	}
	if b.Syllables >= mostSyllables {
		b.Syllable += syllablePoint
	}

	if HasAbstractSuffix(word) {
		b.Suffix = suffixPoint
	}
	if HasComplexCluster(word) {
		b.Cluster = clusterPoint
	}

	b.Total = round1(b.Base + b.Length + b.Syllable + b.Suffix + b.Cluster)
	return b
}

// CountSyllables approximates syllables as runs of a, e, i, o, u, y.
// Words without such a run count as one syllable.
func CountSyllables(word string) int {
	count := 0
	inRun := false
	for _, r := range word {
		if isVowel(r) {
			if !inRun {
				count++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// HasAbstractSuffix reports whether word ends in one of the academic suffixes.
func HasAbstractSuffix(word string) bool {
	for _, suf := range abstractSuffixes {
		if strings.HasSuffix(word, suf) {
			return true
		}
	}
	return false
}

// HasComplexCluster reports whether word contains a hard letter cluster.
func HasComplexCluster(word string) bool {
	for _, c := range complexClusters {
		if strings.Contains(word, c) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package frequency

import (
	"github.com/kljensen/snowball/english"
)

// Stemmed resolves inflected forms ("troubles", "seemed") through their
// Snowball stem when the surface form is not listed. Listed surface forms
// always take precedence.
type Stemmed struct {
	base  *Table
	stems map[string]int
}

// NewStemmed indexes the stems of every word in base, keeping the most
// common tier per stem.
func NewStemmed(base *Table) *Stemmed {
	stems := make(map[string]int, len(base.tiers))
	for w, t := range base.tiers {
		s := english.Stem(w, false)
		if cur, ok := stems[s]; !ok || t < cur {
			stems[s] = t
		}
	}
	return &Stemmed{base: base, stems: stems}
}

// Tier implements Classifier.
func (s *Stemmed) Tier(word string) int {
	if t := s.base.Tier(word); t != Unlisted {
		return t
	}
	if t, ok := s.stems[english.Stem(word, false)]; ok {
		return t
	}
	return Unlisted
}

package vocab

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/japaniel/lyricvocab/pkg/lyrics"
)

// Source records which extraction strategy produced an item.
type Source string

const (
	SourceHeuristic Source = "heuristic"
	SourceLLM       Source = "llm"
)

// itemNamespace scopes the name-based UUIDs used as item ids.
var itemNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/japaniel/lyricvocab/items"))

// ItemID derives a stable identifier from a canonical word.
func ItemID(word string) string {
	return uuid.NewSHA1(itemNamespace, []byte(word)).String()
}

// LearningItem is one vocabulary candidate surfaced to the learner.
type LearningItem struct {
	ID    string
	Word  string
	Score float64
	Count int
	// Example is verbatim input text; it is set once, on first sighting.
	Example     string
	Explanation string
	Source      Source

	Translation      string
	TranslationError string

	threshold int
}

// NewItem creates an item for the first accepted occurrence of word.
func NewItem(word string, score float64, threshold int, example string) LearningItem {
	return LearningItem{
		ID:        ItemID(word),
		Word:      word,
		Score:     score,
		Count:     1,
		Example:   example,
		Source:    SourceHeuristic,
		threshold: threshold,
	}
}

// Observe records a further occurrence. Score and example are left as they were.
func (it *LearningItem) Observe() { it.Count++ }

// Threshold is the level cutoff the item was banded against.
func (it LearningItem) Threshold() int { return it.threshold }

// Band is derived from the score and threshold; it has no setter.
func (it LearningItem) Band() Band { return Banding(it.Score, it.threshold) }

// Candidate is the item shape produced by text-generation collaborators.
type Candidate struct {
	DisplayText string `json:"word"`
	Band        Band   `json:"difficultyBand"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// FromCandidate converts a collaborator candidate into a LearningItem. The
// score is synthesised so that Band() reproduces the collaborator's band;
// collaborators do not report occurrences, so Count is 1. The word is
// canonicalized with lyrics.Normalize so it shares IDs with lyric tokens.
func FromCandidate(c Candidate, threshold int) LearningItem {
	word := lyrics.Normalize(c.DisplayText)
	return LearningItem{
		ID:          ItemID(word),
		Word:        word,
		Score:       representativeScore(c.Band, threshold),
		Count:       1,
		Example:     c.Example,
		Explanation: c.Explanation,
		Source:      SourceLLM,
		threshold:   threshold,
	}
}

type itemJSON struct {
	ID               string  `json:"id"`
	Word             string  `json:"word"`
	DifficultyScore  float64 `json:"difficultyScore"`
	DifficultyBand   Band    `json:"difficultyBand"`
	Count            int     `json:"count"`
	Example          string  `json:"example"`
	Explanation      string  `json:"explanation,omitempty"`
	Source           Source  `json:"source,omitempty"`
	Translation      string  `json:"translation,omitempty"`
	TranslationError string  `json:"translationError,omitempty"`
}

// MarshalJSON writes the item together with its derived band.
func (it LearningItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		ID:               it.ID,
		Word:             it.Word,
		DifficultyScore:  it.Score,
		DifficultyBand:   it.Band(),
		Count:            it.Count,
		Example:          it.Example,
		Explanation:      it.Explanation,
		Source:           it.Source,
		Translation:      it.Translation,
		TranslationError: it.TranslationError,
	})
}

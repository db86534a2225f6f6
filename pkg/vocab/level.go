package vocab

import "strings"

// Level is a CEFR-style learner level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists every level from lowest to highest.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// At B1 every word missing from the frequency table (base score 4) is above
// the cutoff, so "yesterday" and "troubles" reach a B1 learner.
var levelThresholds = map[Level]int{
	LevelA1: 1,
	LevelA2: 2,
	LevelB1: 3,
	LevelB2: 4,
	LevelC1: 5,
	LevelC2: 6,
}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	_, ok := levelThresholds[l]
	return ok
}

// Threshold returns the score cutoff for the level. Words scoring at or below
// it are considered too easy. Unknown levels map to the A1 cutoff.
func (l Level) Threshold() int {
	if t, ok := levelThresholds[l]; ok {
		return t
	}
	return levelThresholds[LevelA1]
}

// ParseLevel accepts "b1", " B1 " and similar spellings.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", NewValidationError("level", "must be one of A1, A2, B1, B2, C1, C2")
	}
	return l, nil
}

package vocab

// Band is the qualitative difficulty of a word relative to the learner's level.
type Band string

const (
	BandComfortable Band = "comfortable"
	BandStretch     Band = "stretch"
	BandChallenging Band = "challenging"
)

func (b Band) String() string { return string(b) }

func (b Band) IsValid() bool {
	switch b {
	case BandComfortable, BandStretch, BandChallenging:
		return true
	}
	return false
}

// stretchWidth is how far above the threshold a score may sit and still be a stretch.
const stretchWidth = 2

// Banding maps a score to a band relative to the level threshold.
func Banding(score float64, threshold int) Band {
	t := float64(threshold)
	switch {
	case score <= t:
		return BandComfortable
	case score <= t+stretchWidth:
		return BandStretch
	default:
		return BandChallenging
	}
}

// representativeScore returns a score that bands to b under threshold.
// Used for items whose band was decided elsewhere.
func representativeScore(b Band, threshold int) float64 {
	t := float64(threshold)
	switch b {
	case BandComfortable:
		return t
	case BandStretch:
		return t + 1
	default:
		return t + stretchWidth + 1
	}
}

package vocab

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score     float64
		threshold int
		want      Band
	}{
		{0, 3, BandComfortable},
		{3, 3, BandComfortable},
		{3.5, 3, BandStretch},
		{5, 3, BandStretch},
		{5.5, 3, BandChallenging},
		{9.5, 6, BandChallenging},
		{8, 6, BandStretch},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Banding(tt.score, tt.threshold), "score=%v threshold=%d", tt.score, tt.threshold)
	}
}

func TestLevelThresholdsIncrease(t *testing.T) {
	t.Parallel()

	prev := -1
	for _, l := range Levels {
		require.True(t, l.IsValid())
		assert.Greater(t, l.Threshold(), prev, "level %s", l)
		prev = l.Threshold()
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	l, err := ParseLevel(" b2 ")
	require.NoError(t, err)
	assert.Equal(t, LevelB2, l)

	_, err = ParseLevel("D1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestItemID_Stable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ItemID("troubles"), ItemID("troubles"))
	assert.NotEqual(t, ItemID("troubles"), ItemID("trouble"))
}

func TestItemObserveKeepsFirstExample(t *testing.T) {
	t.Parallel()

	it := NewItem("troubles", 4, 3, "All my troubles")
	it.Observe()
	it.Observe()

	assert.Equal(t, 3, it.Count)
	assert.Equal(t, "All my troubles", it.Example)
	assert.Equal(t, 4.0, it.Score)
	assert.Equal(t, BandStretch, it.Band())
}

func TestFromCandidate_PreservesBand(t *testing.T) {
	t.Parallel()

	for _, b := range []Band{BandComfortable, BandStretch, BandChallenging} {
		for _, l := range Levels {
			it := FromCandidate(Candidate{DisplayText: " Serendipity ", Band: b}, l.Threshold())
			assert.Equal(t, b, it.Band(), "band %s level %s", b, l)
			assert.Equal(t, "serendipity", it.Word)
			assert.Equal(t, 1, it.Count)
			assert.Equal(t, SourceLLM, it.Source)
		}
	}
}

func TestB1ThresholdBelowUnlistedBase(t *testing.T) {
	t.Parallel()

	// An unlisted word starts at 4 points and must pass the B1 cutoff.
	assert.Equal(t, 3, LevelB1.Threshold())
	assert.Equal(t, BandStretch, Banding(4, LevelB1.Threshold()))
}

func TestFromCandidate_CanonicalWord(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Yesterday,":   "yesterday",
		`"Troubles!"`:  "troubles",
		"Don’t":        "don't",
		"  LANTERN.  ": "lantern",
	}
	for in, want := range tests {
		it := FromCandidate(Candidate{DisplayText: in, Band: BandStretch}, LevelB1.Threshold())
		assert.Equal(t, want, it.Word, in)
		assert.Equal(t, ItemID(want), it.ID, in)
	}
}

func TestItemJSONIncludesBand(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewItem("yesterday", 4, 3, "Yesterday"))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "stretch", m["difficultyBand"])
	assert.Equal(t, "yesterday", m["word"])
	assert.EqualValues(t, 1, m["count"])
	assert.NotContains(t, m, "translation")
}

func TestRank(t *testing.T) {
	t.Parallel()

	items := []LearningItem{
		{Word: "a", Score: 4, Count: 1},
		{Word: "b", Score: 6, Count: 1},
		{Word: "c", Score: 4, Count: 3},
		{Word: "d", Score: 4, Count: 1},
	}
	Rank(items)

	var got []string
	for _, it := range items {
		got = append(got, it.Word)
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, got)
}

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Lyrics: "la la", Level: LevelB1}, false},
		{"empty lyrics", Request{Lyrics: "  \n", Level: LevelB1}, true},
		{"bad level", Request{Lyrics: "la", Level: "Z9"}, true},
		{"missing target", Request{Lyrics: "la", Level: LevelA1, NeedTarget: true}, true},
		{"target given", Request{Lyrics: "la", Level: LevelA1, NeedTarget: true, Target: "es"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

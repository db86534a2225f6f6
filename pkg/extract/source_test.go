package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/lyricvocab/pkg/vocab"
)

type fakeGenerator struct {
	cands []vocab.Candidate
	err   error
}

func (f fakeGenerator) Generate(ctx context.Context, req vocab.Request) ([]vocab.Candidate, error) {
	return f.cands, f.err
}

func b1Request() vocab.Request {
	return vocab.Request{Lyrics: yesterdayLine, Level: vocab.LevelB1}
}

func TestHeuristicSource(t *testing.T) {
	t.Parallel()

	items, err := HeuristicSource{}.Extract(context.Background(), b1Request())
	require.NoError(t, err)
	assert.Equal(t, []string{"yesterday", "troubles", "seemed"}, words(items))
	for _, it := range items {
		assert.Equal(t, vocab.SourceHeuristic, it.Source)
	}
}

func TestHeuristicSource_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := HeuristicSource{}.Extract(ctx, b1Request())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollaboratorSource_KeepsBands(t *testing.T) {
	t.Parallel()

	gen := fakeGenerator{cands: []vocab.Candidate{
		{DisplayText: "Far", Band: vocab.BandComfortable},
		{DisplayText: "Troubles", Band: vocab.BandStretch, Explanation: "plural noun", Example: yesterdayLine},
		{DisplayText: "troubles", Band: vocab.BandChallenging},
		{DisplayText: "Serendipity", Band: vocab.BandChallenging},
	}}

	items, err := CollaboratorSource{Generator: gen}.Extract(context.Background(), b1Request())
	require.NoError(t, err)
	require.Equal(t, []string{"serendipity", "troubles", "far"}, words(items))

	assert.Equal(t, vocab.BandChallenging, items[0].Band())
	assert.Equal(t, vocab.BandStretch, items[1].Band())
	assert.Equal(t, "plural noun", items[1].Explanation)
	assert.Equal(t, vocab.BandComfortable, items[2].Band())
	for _, it := range items {
		assert.Equal(t, 1, it.Count)
		assert.Equal(t, vocab.SourceLLM, it.Source)
	}
}

func TestCollaboratorSource_FailureIsAllOrNothing(t *testing.T) {
	t.Parallel()

	boom := errors.New("upstream unavailable")
	items, err := CollaboratorSource{Generator: fakeGenerator{err: boom}}.Extract(context.Background(), b1Request())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, vocab.ErrExtraction)
	assert.ErrorIs(t, err, boom)

	bad := fakeGenerator{cands: []vocab.Candidate{
		{DisplayText: "lantern", Band: vocab.BandStretch},
		{DisplayText: "harbor", Band: "impossible"},
	}}
	items, err = CollaboratorSource{Generator: bad}.Extract(context.Background(), b1Request())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, vocab.ErrExtraction)
}

func TestCombinedSource_PrimaryWins(t *testing.T) {
	t.Parallel()

	gen := fakeGenerator{cands: []vocab.Candidate{
		{DisplayText: "troubles", Band: vocab.BandChallenging, Explanation: "from the model"},
		{DisplayText: "serendipity", Band: vocab.BandStretch},
	}}
	src := CombinedSource{
		Primary:   HeuristicSource{},
		Secondary: CollaboratorSource{Generator: gen},
	}

	items, err := src.Extract(context.Background(), b1Request())
	require.NoError(t, err)
	require.Equal(t, []string{"yesterday", "troubles", "seemed", "serendipity"}, words(items))

	assert.Equal(t, vocab.SourceHeuristic, items[1].Source)
	assert.Empty(t, items[1].Explanation)
	assert.Equal(t, vocab.SourceLLM, items[3].Source)
}

func TestCollaboratorSource_CanonicalizesAndDropsStopWords(t *testing.T) {
	t.Parallel()

	gen := fakeGenerator{cands: []vocab.Candidate{
		{DisplayText: "Troubles!", Band: vocab.BandStretch},
		{DisplayText: "the", Band: vocab.BandComfortable},
		{DisplayText: "Don’t", Band: vocab.BandComfortable},
		{DisplayText: "troubles", Band: vocab.BandChallenging},
	}}
	items, err := CollaboratorSource{Generator: gen}.Extract(context.Background(), b1Request())
	require.NoError(t, err)
	require.Equal(t, []string{"troubles"}, words(items))
	assert.Equal(t, vocab.ItemID("troubles"), items[0].ID)
	assert.Equal(t, vocab.BandStretch, items[0].Band())

	custom := CollaboratorSource{Generator: gen, StopWords: map[string]struct{}{"troubles": {}}}
	items, err = custom.Extract(context.Background(), b1Request())
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "don't"}, words(items))
}

func TestCollaboratorSource_RejectsWordless(t *testing.T) {
	t.Parallel()

	gen := fakeGenerator{cands: []vocab.Candidate{
		{DisplayText: "lantern", Band: vocab.BandStretch},
		{DisplayText: "--", Band: vocab.BandStretch},
	}}
	items, err := CollaboratorSource{Generator: gen}.Extract(context.Background(), b1Request())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, vocab.ErrExtraction)
}

func TestCombinedSource_OneItemPerCanonicalWord(t *testing.T) {
	t.Parallel()

	gen := fakeGenerator{cands: []vocab.Candidate{
		{DisplayText: "Yesterday,", Band: vocab.BandChallenging},
		{DisplayText: "Troubles!", Band: vocab.BandChallenging},
		{DisplayText: "the", Band: vocab.BandChallenging},
	}}
	src := CombinedSource{
		Primary:   HeuristicSource{},
		Secondary: CollaboratorSource{Generator: gen},
	}

	items, err := src.Extract(context.Background(), b1Request())
	require.NoError(t, err)
	require.Equal(t, []string{"yesterday", "troubles", "seemed"}, words(items))

	ids := make(map[string]struct{})
	for _, it := range items {
		assert.Equal(t, vocab.SourceHeuristic, it.Source, it.Word)
		assert.Equal(t, vocab.ItemID(it.Word), it.ID)
		ids[it.ID] = struct{}{}
	}
	assert.Len(t, ids, 3)
}

func TestCombinedSource_AnyFailureAborts(t *testing.T) {
	t.Parallel()

	src := CombinedSource{
		Primary:   HeuristicSource{},
		Secondary: CollaboratorSource{Generator: fakeGenerator{err: errors.New("quota")}},
	}
	items, err := src.Extract(context.Background(), b1Request())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, vocab.ErrExtraction)
}

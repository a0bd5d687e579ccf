package match

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexatic/prev/internal/model"
	"github.com/lexatic/prev/internal/pattern"
)

func defaultQuerier() *Querier {
	return NewQuerier(pattern.Default(), nil)
}

func TestQuerier_MatchSentence(t *testing.T) {
	lines := defaultQuerier().MatchSentence(goesOver())

	require.Len(t, lines, 1)
	assert.Equal(t, "verb: goes_go, prep: over_over", lines[0])
}

func TestQuerier_MatchSentence_Particle(t *testing.T) {
	lines := defaultQuerier().MatchSentence(litUp())

	require.Len(t, lines, 1)
	assert.Equal(t, "verb: lit_lit, prt-or-advmod: up_up, prep: with_with", lines[0])
}

func TestQuerier_Unmatched(t *testing.T) {
	assert.Empty(t, defaultQuerier().MatchSentence(goesOverThere()))
}

func TestQuerier_PassiveSuppressedByDefaultSet(t *testing.T) {
	assert.Empty(t, defaultQuerier().MatchSentence(wasPacked()),
		"passively used verb must not anchor a default-set match")
}

func TestQuerier_CustomSetBypassesPassiveFilter(t *testing.T) {
	// Structurally identical to the default adjacent-prep pattern, but
	// user-supplied: the passive filter must not apply.
	set, err := pattern.Parse([]byte(`
patterns:
  - nodes:
      - id: verb
        attrs:
          tag: {regex: "^VB"}
      - id: prep
        ref: verb
        op: ">+"
        attrs:
          text: {in: [about, across, against, as, for, into, of, over, through, under, with]}
          dep: prep
`))
	require.NoError(t, err)

	lines := NewQuerier(set, nil).MatchSentence(wasPacked())
	require.Len(t, lines, 1)
	assert.Equal(t, "verb: packed_pack, prep: with_with", lines[0])
}

func TestQuerier_SentenceBlock(t *testing.T) {
	q := defaultQuerier()

	assert.Equal(t,
		"She goes over the question.\nverb: goes_go, prep: over_over\n\n",
		q.SentenceBlock(goesOver(), model.PrintMatched))
	assert.Empty(t, q.SentenceBlock(goesOver(), model.PrintUnmatched))

	assert.Equal(t, "Someone goes over there.\n",
		q.SentenceBlock(goesOverThere(), model.PrintUnmatched))
	assert.Empty(t, q.SentenceBlock(goesOverThere(), model.PrintMatched))
}

func TestQuerier_Report(t *testing.T) {
	doc := &model.Document{Sentences: []*model.Sentence{
		goesOver(),
		goesOverThere(),
		litUp(),
	}}
	q := defaultQuerier()

	matched, err := q.Report(context.Background(), doc, model.PrintMatched)
	require.NoError(t, err)
	assert.Equal(t,
		"She goes over the question.\n"+
			"verb: goes_go, prep: over_over\n"+
			"\n"+
			"His face lit up with pleasure.\n"+
			"verb: lit_lit, prt-or-advmod: up_up, prep: with_with\n",
		matched)

	unmatched, err := q.Report(context.Background(), doc, model.PrintUnmatched)
	require.NoError(t, err)
	assert.Equal(t, "Someone goes over there.\n", unmatched)
}

func TestQuerier_Report_InvalidPrint(t *testing.T) {
	doc := &model.Document{Sentences: []*model.Sentence{goesOver()}}

	_, err := defaultQuerier().Report(context.Background(), doc, model.PrintWhat("everything"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPrintWhat))
}

func TestQuerier_Report_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := &model.Document{Sentences: []*model.Sentence{goesOver()}}
	_, err := defaultQuerier().Report(ctx, doc, model.PrintMatched)
	assert.True(t, errors.Is(err, context.Canceled))
}

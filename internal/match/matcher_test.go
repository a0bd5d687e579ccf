package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexatic/prev/internal/model"
	"github.com/lexatic/prev/internal/pattern"
)

// goesOver: "She goes over the question .": "over" is a prepositional
// child of "goes" and adjacent to it.
func goesOver() *model.Sentence {
	return model.NewSentence("She goes over the question.", []model.Token{
		{Index: 0, Text: "She", Lemma: "she", POS: "PRON", Tag: "PRP", Dep: "nsubj", Head: 1},
		{Index: 1, Text: "goes", Lemma: "go", POS: "VERB", Tag: "VBZ", Dep: "ROOT", Head: 1},
		{Index: 2, Text: "over", Lemma: "over", POS: "ADP", Tag: "IN", Dep: "prep", Head: 1},
		{Index: 3, Text: "the", Lemma: "the", POS: "DET", Tag: "DT", Dep: "det", Head: 4},
		{Index: 4, Text: "question", Lemma: "question", POS: "NOUN", Tag: "NN", Dep: "pobj", Head: 2},
		{Index: 5, Text: ".", Lemma: ".", POS: "PUNCT", Tag: ".", Dep: "punct", Head: 1},
	})
}

// goesOverThere: "Someone goes over there .": here "over" modifies
// "there" adverbially, so the phrasal reading must not fire.
func goesOverThere() *model.Sentence {
	return model.NewSentence("Someone goes over there.", []model.Token{
		{Index: 0, Text: "Someone", Lemma: "someone", POS: "PRON", Tag: "NN", Dep: "nsubj", Head: 1},
		{Index: 1, Text: "goes", Lemma: "go", POS: "VERB", Tag: "VBZ", Dep: "ROOT", Head: 1},
		{Index: 2, Text: "over", Lemma: "over", POS: "ADV", Tag: "RB", Dep: "advmod", Head: 3},
		{Index: 3, Text: "there", Lemma: "there", POS: "ADV", Tag: "RB", Dep: "advmod", Head: 1},
		{Index: 4, Text: ".", Lemma: ".", POS: "PUNCT", Tag: ".", Dep: "punct", Head: 1},
	})
}

// litUp: "His face lit up with pleasure .": particle "up" then its
// right sibling "with".
func litUp() *model.Sentence {
	return model.NewSentence("His face lit up with pleasure.", []model.Token{
		{Index: 0, Text: "His", Lemma: "his", POS: "PRON", Tag: "PRP$", Dep: "poss", Head: 1},
		{Index: 1, Text: "face", Lemma: "face", POS: "NOUN", Tag: "NN", Dep: "nsubj", Head: 2},
		{Index: 2, Text: "lit", Lemma: "lit", POS: "VERB", Tag: "VBD", Dep: "ROOT", Head: 2},
		{Index: 3, Text: "up", Lemma: "up", POS: "ADP", Tag: "RP", Dep: "prt", Head: 2},
		{Index: 4, Text: "with", Lemma: "with", POS: "ADP", Tag: "IN", Dep: "prep", Head: 2},
		{Index: 5, Text: "pleasure", Lemma: "pleasure", POS: "NOUN", Tag: "NN", Dep: "pobj", Head: 4},
		{Index: 6, Text: ".", Lemma: ".", POS: "PUNCT", Tag: ".", Dep: "punct", Head: 2},
	})
}

// wasPacked: "The suitcase was packed with clothes .": passive use of
// "packed", auxpass "was" to its left.
func wasPacked() *model.Sentence {
	return model.NewSentence("The suitcase was packed with clothes.", []model.Token{
		{Index: 0, Text: "The", Lemma: "the", POS: "DET", Tag: "DT", Dep: "det", Head: 1},
		{Index: 1, Text: "suitcase", Lemma: "suitcase", POS: "NOUN", Tag: "NN", Dep: "nsubjpass", Head: 3},
		{Index: 2, Text: "was", Lemma: "be", POS: "AUX", Tag: "VBD", Dep: "auxpass", Head: 3},
		{Index: 3, Text: "packed", Lemma: "pack", POS: "VERB", Tag: "VBN", Dep: "ROOT", Head: 3},
		{Index: 4, Text: "with", Lemma: "with", POS: "ADP", Tag: "IN", Dep: "prep", Head: 3},
		{Index: 5, Text: "clothes", Lemma: "clothe", POS: "NOUN", Tag: "NNS", Dep: "pobj", Head: 4},
		{Index: 6, Text: ".", Lemma: ".", POS: "PUNCT", Tag: ".", Dep: "punct", Head: 3},
	})
}

// coordinated: "She goes over and looks into the matter .": two
// coordinated verbs, each governing its own preposition.
func coordinated() *model.Sentence {
	return model.NewSentence("She goes over and looks into the matter.", []model.Token{
		{Index: 0, Text: "She", Lemma: "she", POS: "PRON", Tag: "PRP", Dep: "nsubj", Head: 1},
		{Index: 1, Text: "goes", Lemma: "go", POS: "VERB", Tag: "VBZ", Dep: "ROOT", Head: 1},
		{Index: 2, Text: "over", Lemma: "over", POS: "ADP", Tag: "IN", Dep: "prep", Head: 1},
		{Index: 3, Text: "and", Lemma: "and", POS: "CCONJ", Tag: "CC", Dep: "cc", Head: 1},
		{Index: 4, Text: "looks", Lemma: "look", POS: "VERB", Tag: "VBZ", Dep: "conj", Head: 1},
		{Index: 5, Text: "into", Lemma: "into", POS: "ADP", Tag: "IN", Dep: "prep", Head: 4},
		{Index: 6, Text: "the", Lemma: "the", POS: "DET", Tag: "DT", Dep: "det", Head: 7},
		{Index: 7, Text: "matter", Lemma: "matter", POS: "NOUN", Tag: "NN", Dep: "pobj", Head: 5},
		{Index: 8, Text: ".", Lemma: ".", POS: "PUNCT", Tag: ".", Dep: "punct", Head: 1},
	})
}

func adjacentPrep(t *testing.T) *pattern.Pattern {
	t.Helper()
	set := pattern.Default()
	require.Equal(t, "adjacent-prep", set.Patterns[0].Name)
	return set.Patterns[0]
}

func TestAll_AdjacentPrep(t *testing.T) {
	bindings := All(goesOver(), adjacentPrep(t))

	require.Len(t, bindings, 1)
	assert.Equal(t, Binding{1, 2}, bindings[0])
}

func TestAll_NoMatchIsEmpty(t *testing.T) {
	for _, pat := range pattern.Default().Patterns {
		assert.Empty(t, All(goesOverThere(), pat), "pattern %s", pat.Name)
	}
}

func TestAll_MultipleIndependentMatches(t *testing.T) {
	bindings := All(coordinated(), adjacentPrep(t))

	require.Len(t, bindings, 2, "each coordinated verb matches independently")
	assert.Equal(t, Binding{1, 2}, bindings[0])
	assert.Equal(t, Binding{4, 5}, bindings[1])
}

func TestAll_Deterministic(t *testing.T) {
	sent := coordinated()
	pat := adjacentPrep(t)

	first := All(sent, pat)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, All(sent, pat))
	}
}

func TestAll_ParticleThenPrep(t *testing.T) {
	set := pattern.Default()
	require.Equal(t, "particle-prep", set.Patterns[1].Name)

	bindings := All(litUp(), set.Patterns[1])
	require.Len(t, bindings, 1)
	assert.Equal(t, Binding{2, 3, 4}, bindings[0])
}

func TestIsPassive(t *testing.T) {
	assert.True(t, isPassive(wasPacked(), 3))
	assert.False(t, isPassive(goesOver(), 1), "finite verb is not passive")

	// VBN without an auxpass left child stays active, e.g. a bare
	// participle used adjectivally.
	active := model.NewSentence("", []model.Token{
		{Index: 0, Text: "packed", Lemma: "pack", Tag: "VBN", Dep: "ROOT", Head: 0},
		{Index: 1, Text: "with", Lemma: "with", Dep: "prep", Head: 0},
	})
	assert.False(t, isPassive(active, 0))
}

package pattern

import "github.com/lexatic/prev/internal/model"

// preps is the closed set of prepositions the default patterns target.
var preps = []string{
	"about", "across", "against", "as", "for", "into",
	"of", "over", "through", "under", "with",
}

// Default returns the built-in pattern set covering the known
// verb-preposition surface forms:
//
//  1. adjacent preposition: "She goes over the question."
//  2. particle or adverb between verb and preposition:
//     "His face lit up with pleasure."
//     "... to do away with nuclear weapons altogether."
//  3. adverb headed by a following preposition: "He went on about his dog."
//  4. intervening preposition: "I rummaged in my suitcase for a tie."
//  5. preposition introducing an infinitival clause:
//     "He longed for the winter to be over."
//
// A verb > adjectival-complement > preposition variant is deliberately
// absent: it selects copular uses that are not verb-preposition
// constructions.
func Default() *Set {
	verbTag := MustRegex(model.AttrTag, "^VB")
	prepOf := NewOneOf(model.AttrText, preps)

	set := &Set{Patterns: []*Pattern{
		{
			Name: "adjacent-prep",
			Nodes: []*Node{
				{ID: "verb", Preds: []Predicate{verbTag}},
				{ID: "prep", Ref: "verb", Op: OpRightChild, Preds: []Predicate{
					prepOf,
					Equals{Attr: model.AttrDep, Value: "prep"},
				}},
			},
		},
		{
			Name: "particle-prep",
			Nodes: []*Node{
				{ID: "verb", Preds: []Predicate{verbTag}},
				{ID: "prt-or-advmod", Ref: "verb", Op: OpChild, Preds: []Predicate{
					NewOneOf(model.AttrPOS, []string{"ADP", "ADV"}),
					NewOneOf(model.AttrDep, []string{"prt", "advmod"}),
				}},
				{ID: "prep", Ref: "prt-or-advmod", Op: OpNextSibling, Preds: []Predicate{
					prepOf,
					Equals{Attr: model.AttrDep, Value: "prep"},
				}},
			},
		},
		{
			Name: "advmod-prep",
			Nodes: []*Node{
				{ID: "verb", Preds: []Predicate{verbTag}},
				{ID: "advmod", Ref: "verb", Op: OpNext, Preds: []Predicate{
					Equals{Attr: model.AttrDep, Value: "advmod"},
				}},
				{ID: "prep", Ref: "advmod", Op: OpRightHead, Preds: []Predicate{
					prepOf,
					Equals{Attr: model.AttrDep, Value: "prep"},
				}},
			},
		},
		{
			Name: "intervening-prep",
			Nodes: []*Node{
				{ID: "verb", Preds: []Predicate{verbTag}},
				{ID: "intervening-prep", Ref: "verb", Op: OpRightChild, Preds: []Predicate{
					Equals{Attr: model.AttrDep, Value: "prep"},
				}},
				{ID: "prep", Ref: "intervening-prep", Op: OpRightSibling, Preds: []Predicate{
					prepOf,
					Equals{Attr: model.AttrDep, Value: "prep"},
				}},
			},
		},
		{
			Name: "prep-infinitive",
			Nodes: []*Node{
				{ID: "verb", Preds: []Predicate{verbTag}},
				{ID: "prep", Ref: "verb", Op: OpNext, Preds: []Predicate{
					prepOf,
					Equals{Attr: model.AttrDep, Value: "mark"},
				}},
				{ID: "infinitive-to", Ref: "prep", Op: OpRightSibling, Preds: []Predicate{
					Equals{Attr: model.AttrText, Value: "to"},
				}},
			},
		},
	}}

	// The built-in set is authored here; a validation failure is a
	// programming error.
	if err := set.Validate(); err != nil {
		panic(err)
	}
	return set
}

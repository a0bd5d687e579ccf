// Package match runs patterns against sentence trees: the anchored
// incremental-binding search, the passive-voice filter applied to the
// default pattern set, and the per-sentence result formatting.
package match

import (
	"github.com/lexatic/prev/internal/model"
	"github.com/lexatic/prev/internal/pattern"
)

// Binding assigns one token index to each pattern node, in node
// declaration order.
type Binding []int

// All enumerates every complete binding of pat against sent,
// deterministically ordered: anchors ascend, and each extension step
// visits candidates in ascending token order. It is a pure function
// over its read-only inputs and safe for concurrent use.
//
// A sentence with no bindings yields nil; absence of matches is not
// an error.
func All(sent *model.Sentence, pat *pattern.Pattern) []Binding {
	anchor := pat.Nodes[0]

	var out []Binding
	for i := range sent.Tokens {
		if !anchor.MatchToken(sent.Tokens[i]) {
			continue
		}
		partial := make(Binding, 1, len(pat.Nodes))
		partial[0] = i
		out = extend(sent, pat, partial, out)
	}
	return out
}

// extend advances the search by one pattern node. The node only ever
// constrains against its single referenced bound token, so candidate
// enumeration stays within that token's structural neighborhood.
func extend(sent *model.Sentence, pat *pattern.Pattern, partial Binding, out []Binding) []Binding {
	k := len(partial)
	if k == len(pat.Nodes) {
		complete := make(Binding, k)
		copy(complete, partial)
		return append(out, complete)
	}

	node := pat.Nodes[k]
	l := partial[node.RefIndex()]
	for _, r := range node.Op.Candidates(sent, l) {
		if node.MatchToken(sent.Tokens[r]) {
			out = extend(sent, pat, append(partial[:k:k], r), out)
		}
	}
	return out
}

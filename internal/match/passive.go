package match

import "github.com/lexatic/prev/internal/model"

// isPassive reports whether the token at i is a passively used verb:
// a past participle with a passive auxiliary ("was", "is") among its
// left children, as in "was shown with". Such anchors are not the
// active-voice verb-preposition construction the default patterns
// target.
//
// See https://universaldependencies.org/en/feat/Voice.html
func isPassive(sent *model.Sentence, i int) bool {
	if sent.Tokens[i].Tag != "VBN" {
		return false
	}
	for _, child := range sent.ChildrenOf(i) {
		if child >= i {
			break
		}
		if sent.Tokens[child].Dep == "auxpass" {
			return true
		}
	}
	return false
}

package model

import "strings"

// Sentence is an ordered sequence of tokens sharing one dependency tree,
// indexed for O(1) head lookups and O(children) child enumeration.
// It is read-only after construction; all query methods are pure.
type Sentence struct {
	Text   string  `json:"text"`   // Original sentence text
	Tokens []Token `json:"tokens"` // Tokens in surface order

	children [][]int // children[i] = indices whose head is i, ascending
}

// NewSentence builds a sentence and its derived child index in one pass.
// Token indices are assumed to be 0..n-1 in order; the bucket insertion
// preserves ascending order so no sort is needed.
func NewSentence(text string, tokens []Token) *Sentence {
	s := &Sentence{Text: text, Tokens: tokens}
	s.index()
	return s
}

func (s *Sentence) index() {
	s.children = make([][]int, len(s.Tokens))
	for i, tok := range s.Tokens {
		if tok.IsRoot() || tok.Head < 0 || tok.Head >= len(s.Tokens) {
			continue
		}
		s.children[tok.Head] = append(s.children[tok.Head], i)
	}
}

// Len returns the number of tokens.
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// HeadOf returns the index of token i's head and true, or -1 and false
// for the root token.
func (s *Sentence) HeadOf(i int) (int, bool) {
	if s.Tokens[i].IsRoot() {
		return -1, false
	}
	return s.Tokens[i].Head, true
}

// ChildrenOf returns the indices of token i's direct dependents in
// ascending order. The returned slice is shared; callers must not
// mutate it.
func (s *Sentence) ChildrenOf(i int) []int {
	if s.children == nil {
		s.index()
	}
	return s.children[i]
}

// IsAncestor reports whether token a dominates token b through one or
// more head links. A token is not its own ancestor.
func (s *Sentence) IsAncestor(a, b int) bool {
	if a == b {
		return false
	}
	cur := b
	for !s.Tokens[cur].IsRoot() {
		cur = s.Tokens[cur].Head
		if cur == a {
			return true
		}
	}
	return false
}

// Precedes reports whether token a occurs before token b in surface order.
func (s *Sentence) Precedes(a, b int) bool {
	return a < b
}

// String returns the sentence text, reconstructing it from token
// surfaces when the parser supplied none.
func (s *Sentence) String() string {
	if s.Text != "" {
		return s.Text
	}
	parts := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

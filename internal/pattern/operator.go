package pattern

import (
	"sort"

	"github.com/lexatic/prev/internal/model"
)

// RelOp is a structural relation between a bound token L and a
// candidate token R. The symbols follow the usual dependency-matching
// notation: the ">" family is vertical (head links), "." and ";" are
// surface adjacency, "$" is sibling order, and "<" mirrors ">" with
// the head on the candidate side.
type RelOp string

const (
	OpChild          RelOp = ">"   // head(R) == L
	OpHead           RelOp = "<"   // head(L) == R
	OpDescendant     RelOp = ">>"  // L dominates R at any depth
	OpAncestor       RelOp = "<<"  // R dominates L at any depth
	OpNext           RelOp = "."   // R immediately follows L
	OpPrev           RelOp = ";"   // R immediately precedes L
	OpAfter          RelOp = ".."  // R follows L anywhere in the sentence
	OpBefore         RelOp = ";;"  // R precedes L anywhere in the sentence
	OpRightChild     RelOp = ">+"  // head(R) == L and R == L+1
	OpLeftChild      RelOp = ">-"  // head(R) == L and R == L-1
	OpRightHead      RelOp = "<+"  // head(L) == R and R == L+1
	OpLeftHead       RelOp = "<-"  // head(L) == R and R == L-1
	OpNextSibling    RelOp = "$+"  // same head and R == L+1
	OpPrevSibling    RelOp = "$-"  // same head and R == L-1
	OpRightSibling   RelOp = "$++" // same head and R > L
	OpLeftSibling    RelOp = "$--" // same head and R < L
)

var relOps = map[RelOp]struct{}{
	OpChild: {}, OpHead: {}, OpDescendant: {}, OpAncestor: {},
	OpNext: {}, OpPrev: {}, OpAfter: {}, OpBefore: {},
	OpRightChild: {}, OpLeftChild: {}, OpRightHead: {}, OpLeftHead: {},
	OpNextSibling: {}, OpPrevSibling: {}, OpRightSibling: {}, OpLeftSibling: {},
}

// Valid reports whether the operator is one of the defined relations.
func (op RelOp) Valid() bool {
	_, ok := relOps[op]
	return ok
}

// Holds reports whether op holds between bound token l and candidate r.
func (op RelOp) Holds(s *model.Sentence, l, r int) bool {
	headL, okL := s.HeadOf(l)
	headR, okR := s.HeadOf(r)

	switch op {
	case OpChild:
		return okR && headR == l
	case OpHead:
		return okL && headL == r
	case OpDescendant:
		return s.IsAncestor(l, r)
	case OpAncestor:
		return s.IsAncestor(r, l)
	case OpNext:
		return r == l+1
	case OpPrev:
		return r == l-1
	case OpAfter:
		return r > l
	case OpBefore:
		return r < l
	case OpRightChild:
		return okR && headR == l && r == l+1
	case OpLeftChild:
		return okR && headR == l && r == l-1
	case OpRightHead:
		return okL && headL == r && r == l+1
	case OpLeftHead:
		return okL && headL == r && r == l-1
	case OpNextSibling:
		return okL && okR && headL == headR && r == l+1
	case OpPrevSibling:
		return okL && okR && headL == headR && r == l-1
	case OpRightSibling:
		return okL && okR && headL == headR && r > l
	case OpLeftSibling:
		return okL && okR && headL == headR && r < l
	}
	return false
}

// Candidates returns, in ascending order, every token index for which
// op holds relative to l. Enumeration is local: it scans the relevant
// neighbor set (children, siblings, fixed offsets) rather than the
// whole sentence wherever the relation allows.
func (op RelOp) Candidates(s *model.Sentence, l int) []int {
	n := s.Len()

	switch op {
	case OpChild:
		return s.ChildrenOf(l)
	case OpHead:
		if head, ok := s.HeadOf(l); ok {
			return []int{head}
		}
		return nil
	case OpDescendant:
		return descendants(s, l)
	case OpAncestor:
		return ancestors(s, l)
	case OpNext:
		if l+1 < n {
			return []int{l + 1}
		}
		return nil
	case OpPrev:
		if l-1 >= 0 {
			return []int{l - 1}
		}
		return nil
	case OpAfter:
		return indexRange(l+1, n)
	case OpBefore:
		return indexRange(0, l)
	case OpRightChild:
		if l+1 < n {
			if head, ok := s.HeadOf(l + 1); ok && head == l {
				return []int{l + 1}
			}
		}
		return nil
	case OpLeftChild:
		if l-1 >= 0 {
			if head, ok := s.HeadOf(l - 1); ok && head == l {
				return []int{l - 1}
			}
		}
		return nil
	case OpRightHead:
		if head, ok := s.HeadOf(l); ok && head == l+1 {
			return []int{head}
		}
		return nil
	case OpLeftHead:
		if head, ok := s.HeadOf(l); ok && head == l-1 {
			return []int{head}
		}
		return nil
	case OpNextSibling, OpPrevSibling, OpRightSibling, OpLeftSibling:
		return siblings(s, l, op)
	}
	return nil
}

func descendants(s *model.Sentence, root int) []int {
	var out []int
	stack := append([]int(nil), s.ChildrenOf(root)...)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, i)
		stack = append(stack, s.ChildrenOf(i)...)
	}
	sort.Ints(out)
	return out
}

func ancestors(s *model.Sentence, i int) []int {
	var out []int
	cur := i
	for {
		head, ok := s.HeadOf(cur)
		if !ok {
			break
		}
		out = append(out, head)
		cur = head
	}
	sort.Ints(out)
	return out
}

func siblings(s *model.Sentence, l int, op RelOp) []int {
	head, ok := s.HeadOf(l)
	if !ok {
		return nil
	}
	var out []int
	for _, sib := range s.ChildrenOf(head) {
		if sib == l {
			continue
		}
		switch op {
		case OpNextSibling:
			if sib == l+1 {
				out = append(out, sib)
			}
		case OpPrevSibling:
			if sib == l-1 {
				out = append(out, sib)
			}
		case OpRightSibling:
			if sib > l {
				out = append(out, sib)
			}
		case OpLeftSibling:
			if sib < l {
				out = append(out, sib)
			}
		}
	}
	return out
}

func indexRange(lo, hi int) []int {
	if lo >= hi {
		return nil
	}
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

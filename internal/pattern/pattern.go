package pattern

import (
	"github.com/cockroachdb/errors"

	"github.com/lexatic/prev/internal/model"
)

// ErrMalformed marks pattern definitions that violate the structural
// invariants (empty set, missing anchor, forward references, unknown
// operators or attributes). Loads failing with it are fatal.
var ErrMalformed = errors.New("malformed pattern")

// Node is one constrained position in a pattern. The first node of a
// pattern is the anchor and carries no relation; every later node is
// constrained relative to exactly one previously declared node.
type Node struct {
	ID    string
	Preds []Predicate
	Ref   string // ID of an earlier node; empty on the anchor
	Op    RelOp  // Relation required between Ref's token and this node's token

	refIdx int // Position of Ref within the pattern, resolved by Validate
}

// MatchToken reports whether the token satisfies every predicate on
// the node. Evaluation short-circuits on the first failure.
func (n *Node) MatchToken(tok model.Token) bool {
	for _, p := range n.Preds {
		if !p.Match(tok) {
			return false
		}
	}
	return true
}

// RefIndex returns the resolved position of the referenced node.
// Only meaningful after Validate; the anchor returns -1.
func (n *Node) RefIndex() int {
	return n.refIdx
}

// Pattern is an ordered chain of nodes describing one construction.
type Pattern struct {
	Name  string
	Nodes []*Node
}

// Validate checks the structural invariants and resolves node
// references to positions. It must be called before matching.
func (p *Pattern) Validate() error {
	if len(p.Nodes) == 0 {
		return errors.Wrap(ErrMalformed, "pattern has no nodes")
	}

	seen := make(map[string]int, len(p.Nodes))
	for k, node := range p.Nodes {
		if node.ID == "" {
			return errors.Wrapf(ErrMalformed, "node %d has no id", k)
		}
		if _, dup := seen[node.ID]; dup {
			return errors.Wrapf(ErrMalformed, "duplicate node id %q", node.ID)
		}

		if k == 0 {
			if node.Ref != "" || node.Op != "" {
				return errors.Wrapf(ErrMalformed, "anchor node %q must not carry a relation", node.ID)
			}
			node.refIdx = -1
		} else {
			if node.Ref == "" {
				return errors.Wrapf(ErrMalformed, "node %q has no reference to an earlier node", node.ID)
			}
			refIdx, ok := seen[node.Ref]
			if !ok {
				return errors.Wrapf(ErrMalformed, "node %q references undeclared id %q", node.ID, node.Ref)
			}
			if !node.Op.Valid() {
				return errors.Wrapf(ErrMalformed, "node %q has unknown operator %q", node.ID, node.Op)
			}
			node.refIdx = refIdx
		}

		seen[node.ID] = k
	}
	return nil
}

// Set is an ordered, immutable collection of patterns for one run.
type Set struct {
	Patterns []*Pattern

	// Custom marks a user-supplied set. The passive-voice filter only
	// applies to the built-in default set; externally authored patterns
	// are trusted to encode their own voice handling.
	Custom bool
}

// Validate checks the set invariant: a non-empty list of well-formed
// patterns. Errors name the offending pattern's position.
func (s *Set) Validate() error {
	if len(s.Patterns) == 0 {
		return errors.Wrap(ErrMalformed, "pattern set is empty")
	}
	for i, p := range s.Patterns {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "pattern %d", i)
		}
	}
	return nil
}

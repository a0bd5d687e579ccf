// Package pattern defines the declarative dependency patterns matched
// against sentence trees: per-node attribute predicates, the relational
// operators constraining node pairs, and the loader for the built-in
// and user-supplied pattern sets.
package pattern

import (
	"regexp"

	"github.com/cockroachdb/errors"

	"github.com/lexatic/prev/internal/model"
)

// Predicate is a boolean constraint on a single token attribute.
// Predicates are exact; there is no fuzzy matching.
type Predicate interface {
	Match(tok model.Token) bool
}

// Equals requires an attribute to equal a literal value.
type Equals struct {
	Attr  model.Attr
	Value string
}

// Match implements Predicate.
func (p Equals) Match(tok model.Token) bool {
	return tok.Get(p.Attr) == p.Value
}

// OneOf requires an attribute to be a member of a value set.
type OneOf struct {
	Attr   model.Attr
	values map[string]struct{}
}

// NewOneOf creates a set-membership predicate.
func NewOneOf(attr model.Attr, values []string) OneOf {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return OneOf{Attr: attr, values: set}
}

// Match implements Predicate.
func (p OneOf) Match(tok model.Token) bool {
	_, ok := p.values[tok.Get(p.Attr)]
	return ok
}

// Regex requires an attribute to match a regular expression,
// compiled once at load time.
type Regex struct {
	Attr model.Attr
	re   *regexp.Regexp
}

// NewRegex creates a regex predicate, rejecting uncompilable expressions.
func NewRegex(attr model.Attr, expr string) (Regex, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Regex{}, errors.Wrapf(err, "compile regex %q", expr)
	}
	return Regex{Attr: attr, re: re}, nil
}

// MustRegex is NewRegex for statically known expressions.
func MustRegex(attr model.Attr, expr string) Regex {
	p, err := NewRegex(attr, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match implements Predicate.
func (p Regex) Match(tok model.Token) bool {
	return p.re.MatchString(tok.Get(p.Attr))
}

// validAttrs lists the attributes a predicate may constrain.
var validAttrs = map[model.Attr]struct{}{
	model.AttrText:  {},
	model.AttrLemma: {},
	model.AttrPOS:   {},
	model.AttrTag:   {},
	model.AttrDep:   {},
}

// ValidAttr reports whether attr names a matchable token attribute.
func ValidAttr(attr model.Attr) bool {
	_, ok := validAttrs[attr]
	return ok
}

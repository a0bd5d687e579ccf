package pattern

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lexatic/prev/internal/model"
)

// ErrSourceUnavailable marks a missing override pattern file. Load
// recovers from it by falling back to the default set; it never
// reaches callers.
var ErrSourceUnavailable = errors.New("pattern source unavailable")

// Load returns the pattern set for a run. An empty path selects the
// built-in default set. A path naming a missing file logs a warning
// and falls back to the default set; a file that exists but is
// malformed fails fast.
func Load(path string, logger *zap.SugaredLogger) (*Set, error) {
	if path == "" {
		return Default(), nil
	}

	set, err := LoadFile(path)
	if errors.Is(err, ErrSourceUnavailable) {
		logger.Warnw("pattern file does not exist, using default patterns", "path", path)
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	logger.Infow("using custom patterns", "path", path, "patterns", len(set.Patterns))
	return set, nil
}

// LoadFile parses a YAML pattern definition into a validated Set.
// The set is marked Custom, which disables the passive-voice filter.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrSourceUnavailable, path)
		}
		return nil, errors.Wrapf(err, "read pattern file %s", path)
	}
	return Parse(data)
}

// Parse decodes a YAML pattern definition. Structural violations are
// reported with the offending pattern's position in the set.
func Parse(data []byte) (*Set, error) {
	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.WithSecondaryError(ErrMalformed, err), "parse pattern yaml")
	}

	set := &Set{Custom: true}
	for i, fp := range file.Patterns {
		p, err := fp.toPattern()
		if err != nil {
			return nil, errors.Wrapf(err, "pattern %d", i)
		}
		set.Patterns = append(set.Patterns, p)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// patternFile is the YAML schema:
//
//	patterns:
//	  - name: adjacent-prep
//	    nodes:
//	      - id: verb
//	        attrs:
//	          tag: {regex: "^VB"}
//	      - id: prep
//	        ref: verb
//	        op: ">+"
//	        attrs:
//	          text: {in: [over, with]}
//	          dep: prep
//
// A scalar attribute value means equality; {in: [...]} is set
// membership; {regex: "..."} is a regular expression.
type patternFile struct {
	Patterns []filePattern `yaml:"patterns"`
}

type filePattern struct {
	Name  string     `yaml:"name"`
	Nodes []fileNode `yaml:"nodes"`
}

type fileNode struct {
	ID    string               `yaml:"id"`
	Ref   string               `yaml:"ref"`
	Op    string               `yaml:"op"`
	Attrs map[string]yaml.Node `yaml:"attrs"`
}

func (fp filePattern) toPattern() (*Pattern, error) {
	p := &Pattern{Name: fp.Name}
	for _, fn := range fp.Nodes {
		node := &Node{ID: fn.ID, Ref: fn.Ref, Op: RelOp(fn.Op)}
		for name, value := range fn.Attrs {
			attr := model.Attr(name)
			if !ValidAttr(attr) {
				return nil, errors.Wrapf(ErrMalformed, "node %q: unknown attribute %q", fn.ID, name)
			}
			pred, err := decodePredicate(attr, value)
			if err != nil {
				return nil, errors.Wrapf(err, "node %q, attribute %q", fn.ID, name)
			}
			node.Preds = append(node.Preds, pred)
		}
		p.Nodes = append(p.Nodes, node)
	}
	return p, nil
}

func decodePredicate(attr model.Attr, value yaml.Node) (Predicate, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		var literal string
		if err := value.Decode(&literal); err != nil {
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
		return Equals{Attr: attr, Value: literal}, nil

	case yaml.MappingNode:
		var constraint struct {
			In    []string `yaml:"in"`
			Regex string   `yaml:"regex"`
		}
		if err := value.Decode(&constraint); err != nil {
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
		switch {
		case len(constraint.In) > 0 && constraint.Regex != "":
			return nil, errors.Wrap(ErrMalformed, "constraint has both in and regex")
		case len(constraint.In) > 0:
			return NewOneOf(attr, constraint.In), nil
		case constraint.Regex != "":
			pred, err := NewRegex(attr, constraint.Regex)
			if err != nil {
				return nil, errors.Wrap(ErrMalformed, err.Error())
			}
			return pred, nil
		}
		return nil, errors.Wrap(ErrMalformed, "constraint must be a literal, {in: [...]}, or {regex: ...}")
	}
	return nil, errors.Wrap(ErrMalformed, "constraint must be a literal, {in: [...]}, or {regex: ...}")
}

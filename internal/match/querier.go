package match

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lexatic/prev/internal/model"
	"github.com/lexatic/prev/internal/pattern"
)

// ErrInvalidPrintWhat is a caller error: the print selection is
// neither "matched" nor "unmatched". It is rejected before any
// matching begins.
var ErrInvalidPrintWhat = errors.New("invalid print selection")

// Querier runs a pattern set against sentences and formats results.
// It holds no mutable state after construction and is safe for
// concurrent use.
type Querier struct {
	set    *pattern.Set
	logger *zap.SugaredLogger
}

// NewQuerier creates a querier over an immutable pattern set.
func NewQuerier(set *pattern.Set, logger *zap.SugaredLogger) *Querier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Querier{set: set, logger: logger}
}

// MatchSentence runs every pattern against the sentence and returns
// the surviving formatted match lines, in pattern order then binding
// order. Matches anchored on a passively used verb are dropped unless
// the set is user-supplied.
func (q *Querier) MatchSentence(sent *model.Sentence) []string {
	q.logger.Debugw("matching sentence", "text", sent.String())

	var lines []string
	for _, pat := range q.set.Patterns {
		for _, binding := range All(sent, pat) {
			if !q.set.Custom && isPassive(sent, binding[0]) {
				continue
			}
			lines = append(lines, formatBinding(sent, pat, binding))
		}
	}
	return lines
}

// formatBinding renders one match as "<id>: <text>_<lemma>" pairs,
// comma-joined in node declaration order.
func formatBinding(sent *model.Sentence, pat *pattern.Pattern, binding Binding) string {
	var b strings.Builder
	for k, node := range pat.Nodes {
		if k > 0 {
			b.WriteString(", ")
		}
		tok := sent.Tokens[binding[k]]
		b.WriteString(node.ID)
		b.WriteString(": ")
		b.WriteString(tok.Text)
		b.WriteString("_")
		b.WriteString(tok.Lemma)
	}
	return b.String()
}

// SentenceBlock returns the sentence's contribution to a report under
// the given print selection, or "" when the sentence does not meet the
// criterion.
func (q *Querier) SentenceBlock(sent *model.Sentence, print model.PrintWhat) string {
	lines := q.MatchSentence(sent)

	switch print {
	case model.PrintMatched:
		if len(lines) > 0 {
			return sent.String() + "\n" + strings.Join(lines, "\n") + "\n\n"
		}
	case model.PrintUnmatched:
		if len(lines) == 0 {
			return sent.String() + "\n"
		}
	}
	return ""
}

// Report matches every sentence of the document sequentially and
// assembles the report. Cancellation is checked between sentences.
func (q *Querier) Report(ctx context.Context, doc *model.Document, print model.PrintWhat) (string, error) {
	if !print.Valid() {
		return "", errors.Wrapf(ErrInvalidPrintWhat, "%q", print)
	}

	blocks := make([]string, 0, len(doc.Sentences))
	for _, sent := range doc.Sentences {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		blocks = append(blocks, q.SentenceBlock(sent, print))
	}
	return Assemble(blocks), nil
}

// Assemble joins per-sentence blocks in document order and normalizes
// the trailing whitespace to a single newline.
func Assemble(blocks []string) string {
	return strings.TrimRight(strings.Join(blocks, ""), " \t\n") + "\n"
}

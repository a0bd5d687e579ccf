// Package conllu reads dependency-parsed text in the CoNLL-U format,
// the interchange format the external parser writes. Only the columns
// the matcher consumes are kept: form, lemma, UPOS, XPOS, head and
// dependency relation.
//
// See https://universaldependencies.org/format.html
package conllu

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/lexatic/prev/internal/model"
)

const numFields = 10

// ReadFile parses a CoNLL-U file into a document.
func ReadFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	doc, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	doc.Source = path
	return doc, nil
}

// Read parses CoNLL-U from a reader. Sentences are separated by blank
// lines; `# text = ...` comments carry the original sentence text.
// Multi-word token ranges (`1-2`) and empty nodes (`1.1`) are skipped:
// the tree is defined over the basic word lines only.
func Read(r io.Reader) (*model.Document, error) {
	doc := &model.Document{}

	var (
		text   string
		tokens []model.Token
		heads  []int // 1-based heads, resolved after the sentence ends
	)

	flush := func() error {
		if len(tokens) == 0 {
			return nil
		}
		for i, head := range heads {
			if head < 0 || head > len(tokens) {
				return errors.Newf("token %d: head %d out of range", i+1, head)
			}
			if head == 0 {
				tokens[i].Head = i // root points at itself
			} else {
				tokens[i].Head = head - 1
			}
		}
		doc.Sentences = append(doc.Sentences, model.NewSentence(text, tokens))
		text, tokens, heads = "", nil, nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == "":
			if err := flush(); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineno)
			}
			continue
		case strings.HasPrefix(line, "#"):
			if rest, ok := strings.CutPrefix(line, "# text ="); ok {
				text = strings.TrimSpace(rest)
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != numFields {
			return nil, errors.Newf("line %d: expected %d tab-separated fields, got %d", lineno, numFields, len(fields))
		}

		// Ranges and empty nodes carry no head of their own.
		if strings.ContainsAny(fields[0], "-.") {
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: token id %q", lineno, fields[0])
		}
		if id != len(tokens)+1 {
			return nil, errors.Newf("line %d: token id %d out of order (want %d)", lineno, id, len(tokens)+1)
		}

		head, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: head %q", lineno, fields[6])
		}

		tokens = append(tokens, model.Token{
			Index: id - 1,
			Text:  fields[1],
			Lemma: fields[2],
			POS:   fields[3],
			Tag:   fields[4],
			Dep:   fields[7],
		})
		heads = append(heads, head)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	// Final sentence may end at EOF without a blank line.
	if err := flush(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Package pipeline orchestrates a matching run: load parsed documents
// (through the cache), fan sentences out across the worker pool, and
// write each report to its destination atomically.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lexatic/prev/internal/cache"
	"github.com/lexatic/prev/internal/match"
	"github.com/lexatic/prev/internal/model"
	"github.com/lexatic/prev/internal/pattern"
	"github.com/lexatic/prev/internal/worker"
)

// Pipeline runs pattern matching over parsed input files.
type Pipeline struct {
	cfg     *model.Config
	querier *match.Querier
	cache   cache.Cache // nil when disabled
	logger  *zap.SugaredLogger
}

// New builds a pipeline: the pattern set is loaded (with fallback to
// the default set when the override file is missing) and the print
// selection is validated before any matching begins.
func New(cfg *model.Config, logger *zap.SugaredLogger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if !cfg.Print.Valid() {
		return nil, errors.Wrapf(match.ErrInvalidPrintWhat, "%q", cfg.Print)
	}

	set, err := pattern.Load(cfg.Patterns.Path, logger)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:     cfg,
		querier: match.NewQuerier(set, logger),
		logger:  logger,
	}
	if cfg.Cache.Enabled {
		p.cache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}
	return p, nil
}

// MatchDocument produces the document's report, matching sentences
// concurrently when more than one worker is configured. Sentence
// order in the report always follows document order.
func (p *Pipeline) MatchDocument(ctx context.Context, doc *model.Document) (string, error) {
	if p.cfg.Concurrency.Workers <= 1 || len(doc.Sentences) <= 1 {
		return p.querier.Report(ctx, doc, p.cfg.Print)
	}

	jobs := make([]worker.Job, len(doc.Sentences))
	for i, sent := range doc.Sentences {
		jobs[i] = &worker.SentenceJob{
			Index:    i,
			Sentence: sent,
			Querier:  p.querier,
			Print:    p.cfg.Print,
		}
	}
	results := worker.NewPool(p.cfg.Concurrency.Workers).Run(ctx, jobs)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	sentenceResults := make([]*worker.SentenceResult, 0, len(results))
	for _, res := range results {
		if err := res.GetError(); err != nil {
			return "", err
		}
		sentenceResults = append(sentenceResults, res.(*worker.SentenceResult))
	}
	sort.Slice(sentenceResults, func(a, b int) bool {
		return sentenceResults[a].Index < sentenceResults[b].Index
	})

	blocks := make([]string, len(sentenceResults))
	for i, sr := range sentenceResults {
		blocks[i] = sr.Block
	}
	return match.Assemble(blocks), nil
}

// RunFile processes one input: load, match, write. The output goes to
// stdout or to "<name>_<print>.txt" next to the input.
func (p *Pipeline) RunFile(ctx context.Context, path string) error {
	p.logger.Infow("matching", "path", path)

	doc, err := p.LoadDocument(path)
	if err != nil {
		return err
	}
	if p.cfg.Output.NoQuery {
		return nil
	}

	report, err := p.MatchDocument(ctx, doc)
	if err != nil {
		return err
	}

	if p.cfg.Output.Stdout {
		_, err := fmt.Fprint(os.Stdout, report)
		return err
	}

	ofile := OutputPath(path, p.cfg.Print)
	if err := WriteFileAtomic(ofile, []byte(report)); err != nil {
		return err
	}
	p.logger.Infow("report written", "path", ofile)
	return nil
}

// Run processes every input in order, logging progress. The first
// failure, including cancellation, stops the run.
func (p *Pipeline) Run(ctx context.Context, paths []string) error {
	total := len(paths)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.logger.Infof("processing %s...(%d/%d)", path, i+1, total)
		if err := p.RunFile(ctx, path); err != nil {
			return errors.Wrapf(err, "%s", path)
		}
	}
	return nil
}

// OutputPath names the report file for an input:
// "dir/name.conllu" becomes "dir/name_matched.txt".
func OutputPath(input string, print model.PrintWhat) string {
	dir := filepath.Dir(input)
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, print))
}

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexatic/prev/internal/logging"
	"github.com/lexatic/prev/internal/model"
	"github.com/lexatic/prev/internal/pipeline"
)

var (
	printWhat   string
	patternFile string
	inputFile   string
	workers     int
	toStdout    bool
	refresh     bool
	noCache     bool
	noQuery     bool
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <file>...",
	Short: "Match verb-preposition patterns against parsed input files",
	Long: `Match runs every dependency pattern against each sentence of the
given CoNLL-U files and writes one report per input.

By default the report lists matched sentences with their matches, as
"<node>: <text>_<lemma>" pairs; --print unmatched lists the sentences
no pattern matched instead. Reports are written next to each input as
<name>_<print>.txt unless --stdout is given.

Example:
  prev match essays/*.conllu
  prev match essay.conllu --print unmatched
  prev match essay.conllu --patterns my-patterns.yaml --workers 8
  prev match --input-file corpus-files.txt`,
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVarP(&printWhat, "print", "p", "matched", "print matched or unmatched sentences")
	matchCmd.Flags().StringVarP(&patternFile, "patterns", "c", "", "YAML file overriding the default dependency patterns")
	matchCmd.Flags().StringVar(&inputFile, "input-file", "", "file containing a list of input paths, one per line")
	matchCmd.Flags().IntVar(&workers, "workers", 3, "number of concurrent matching workers per document")
	matchCmd.Flags().BoolVar(&toStdout, "stdout", false, "write reports to stdout instead of per-input files")
	matchCmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached parses even if they exist")
	matchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parsed-document cache")
	matchCmd.Flags().BoolVar(&noQuery, "no-query", false, "just load (and cache) the inputs, skip matching")

	_ = viper.BindPFlag("concurrency.workers", matchCmd.Flags().Lookup("workers"))
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := logging.New(verbose, quiet)
	defer func() { _ = logger.Sync() }()

	inputs, err := pipeline.ExpandInputs(args, inputFile)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no input files; pass paths or --input-file")
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Print = model.PrintWhat(printWhat)
	cfg.Patterns.Path = patternFile
	cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Refresh = refresh
	cfg.Output.Stdout = toStdout
	cfg.Output.NoQuery = noQuery
	cfg.Output.Verbose = verbose

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}

	// Interrupts cancel between sentences; reports are written
	// atomically, so a cancelled run never leaves partial output.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx, inputs); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warnw("run interrupted", "inputs", len(inputs))
		}
		return err
	}
	return nil
}

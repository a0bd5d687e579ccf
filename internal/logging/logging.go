// Package logging builds the process logger from the CLI verbosity
// flags.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger: --verbose lowers the level to debug,
// --quiet raises it to error-only, default is info. Output goes to
// stderr so piped reports stay clean.
func New(verbose, quiet bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}

	switch {
	case quiet:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	case verbose:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

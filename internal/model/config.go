package model

import (
	"os"
	"path/filepath"
	"time"
)

// PrintWhat selects which sentences a report contains.
type PrintWhat string

const (
	PrintMatched   PrintWhat = "matched"   // Sentences with at least one match, plus their match lines
	PrintUnmatched PrintWhat = "unmatched" // Sentences with no match, bare text
)

// Valid reports whether the value is one of the two allowed settings.
func (p PrintWhat) Valid() bool {
	return p == PrintMatched || p == PrintUnmatched
}

// Config holds all runtime configuration.
type Config struct {
	Print       PrintWhat         `yaml:"print"`       // matched or unmatched
	Patterns    PatternsConfig    `yaml:"patterns"`    // pattern source
	Concurrency ConcurrencyConfig `yaml:"concurrency"` // worker fan-out
	Cache       CacheConfig       `yaml:"cache"`       // parsed-document cache
	Output      OutputConfig      `yaml:"output"`      // report destination
}

// PatternsConfig selects the pattern source.
type PatternsConfig struct {
	// Path to a YAML pattern override file. Empty means the built-in
	// default set (which also enables the passive-voice filter).
	Path string `yaml:"path"`
}

// ConcurrencyConfig controls the per-sentence worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// CacheConfig controls the parsed-document cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
	Refresh bool          `yaml:"refresh"` // Ignore existing entries, rewrite them
}

// OutputConfig controls where reports go.
type OutputConfig struct {
	Stdout  bool `yaml:"stdout"`  // Write to stdout instead of per-input files
	NoQuery bool `yaml:"noQuery"` // Load (and cache) documents without matching
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	cacheDir := ".prev-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".prev", "cache")
	}

	return &Config{
		Print: PrintMatched,
		Concurrency: ConcurrencyConfig{
			Workers: 3,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     cacheDir,
			TTL:     30 * 24 * time.Hour,
		},
	}
}

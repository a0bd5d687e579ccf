package pipeline

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ExpandInputs resolves the run's input file list: positional
// arguments may be literal paths or shell-style globs, and listFile
// (when non-empty) names a file holding one path per line. Duplicates
// are dropped, order is preserved.
func ExpandInputs(args []string, listFile string) ([]string, error) {
	candidates := append([]string(nil), args...)

	if listFile != "" {
		listed, err := ReadFileList(listFile)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, listed...)
	}

	var (
		paths []string
		seen  = make(map[string]bool)
	)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			add(candidate)
			continue
		}
		globbed, err := filepath.Glob(candidate)
		if err != nil {
			return nil, errors.Wrapf(err, "bad glob %q", candidate)
		}
		if len(globbed) == 0 {
			return nil, errors.Newf("no such file as %s", candidate)
		}
		for _, path := range globbed {
			add(path)
		}
	}
	return paths, nil
}

// ReadFileList reads input paths from a file, one per line. Blank
// lines and "#" comments are skipped.
func ReadFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open file list %s", path)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan file list %s", path)
	}
	return paths, nil
}

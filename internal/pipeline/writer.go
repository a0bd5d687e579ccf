package pipeline

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// WriteFileAtomic writes data via a temp file in the target directory
// and renames it into place. An interrupted run therefore leaves
// either no report or a complete one, never a truncated fragment.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", dir)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "close %s", path)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "chmod %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "rename into %s", path)
	}
	return nil
}

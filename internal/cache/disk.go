package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

// DiskCache persists documents across runs as JSON entries under one
// directory, the successor to the original *_depparsed.json files the
// parser dropped next to its inputs.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk cache rooted at dir.
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value, dropping expired entries on the way.
func (c *DiskCache) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(c.path(key))
		return nil, false
	}
	return entry.Data, true
}

// Set stores a value with the given TTL (0 means the default). The
// entry file is written via a temp file and rename so a concurrent
// reader never sees a half-written entry.
func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(diskEntry{Data: value, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return errors.Wrap(err, "marshal cache entry")
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return errors.Wrap(err, "create cache dir")
	}

	tmp, err := os.CreateTemp(c.dir, ".entry-*")
	if err != nil {
		return errors.Wrap(err, "create temp entry")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "write cache entry")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "close cache entry")
	}
	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "store cache entry")
	}
	return nil
}

// Delete removes a value.
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes the whole cache directory.
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

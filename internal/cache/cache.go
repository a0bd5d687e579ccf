// Package cache persists parsed documents between runs so unchanged
// inputs skip re-parsing. Keys are derived from input content, so an
// edited file never hits a stale entry.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-oriented store with per-entry expiry.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentKey derives the cache key for an input from its content hash.
func DocumentKey(content []byte) string {
	hash := sha256.Sum256(content)
	return "prev:v1:" + hex.EncodeToString(hash[:])
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from content. Keys are content
// hashes, so an unchanged document or sentence hits the cache regardless of
// its file name.
func Key(namespace, content string) string {
	hash := sha256.Sum256([]byte(content))
	return "tripod:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}

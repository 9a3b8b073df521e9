package augment

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// responseCache stores raw analysis responses keyed by a content hash of the
// prompt. Safe for concurrent read/insert; a miss race that results in two
// identical outbound calls is acceptable.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func newResponseCache() *responseCache {
	return &responseCache{entries: make(map[string]string)}
}

// key hashes prompt content so equivalent requests share one entry.
func (c *responseCache) key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func (c *responseCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *responseCache) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"spamsift/internal/domain"
)

// PredictionCache memoizes predictions in the serving layer. Entries expire
// by TTL, evict oldest-first when full, and are invalidated wholesale when
// the served model changes generation.
type PredictionCache struct {
	mu       sync.RWMutex
	entries  map[string]*cacheEntry
	order    []string
	maxSize  int
	ttl      time.Duration
	modelGen uint64
}

type cacheEntry struct {
	prediction domain.Prediction
	timestamp  time.Time
	modelGen   uint64
}

func NewPredictionCache(maxSize int, ttl time.Duration) *PredictionCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PredictionCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:16])
}

func (c *PredictionCache) Get(text string) (domain.Prediction, bool) {
	c.mu.RLock()
	entry, exists := c.entries[cacheKey(text)]
	currentGen := c.modelGen
	c.mu.RUnlock()

	if !exists {
		return domain.Prediction{}, false
	}
	if entry.modelGen != currentGen || time.Since(entry.timestamp) > c.ttl {
		return domain.Prediction{}, false
	}
	return entry.prediction, true
}

func (c *PredictionCache) Put(text string, prediction domain.Prediction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(text)
	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = &cacheEntry{
		prediction: prediction,
		timestamp:  time.Now(),
		modelGen:   c.modelGen,
	}
}

// InvalidateModel marks every cached prediction stale. Call after swapping
// in a new artifact.
func (c *PredictionCache) InvalidateModel() {
	c.mu.Lock()
	c.modelGen++
	c.mu.Unlock()
}

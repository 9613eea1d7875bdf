package analysis

import "sync"

type cacheEntry struct {
	signature Signature
	result    Result
}

// ConsistencyCache remembers recent (signature, result) pairs so that
// visually similar uploads of the same subject reuse the prior result
// instead of flip-flopping on heuristic noise. It holds at most Capacity
// entries in insertion order with FIFO eviction; entries are never
// promoted on hit.
//
// The cache is guarded by a mutex because the server runs analyses
// concurrently; within one analysis access is sequential.
type ConsistencyCache struct {
	mu        sync.Mutex
	capacity  int
	threshold float64
	scale     float64
	entries   []cacheEntry
}

// NewConsistencyCache builds a cache from the given tuning.
func NewConsistencyCache(cfg CacheConfig) *ConsistencyCache {
	capacity := cfg.Capacity
	if capacity < 1 {
		capacity = 1
	}
	return &ConsistencyCache{
		capacity:  capacity,
		threshold: cfg.SimilarityThreshold,
		scale:     cfg.DiffScale,
	}
}

// Lookup scans entries in insertion order and returns the result of the
// first one whose similarity to sig exceeds the threshold. First-match
// rather than best-match: results therefore depend on cache order, which
// is a documented property of the lookup.
func (c *ConsistencyCache) Lookup(sig Signature) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if sig.Similarity(e.signature, c.scale) > c.threshold {
			return e.result, true
		}
	}
	return Result{}, false
}

// Record appends a new entry, evicting the oldest when at capacity. Empty
// signatures are not recorded. The signature is copied; callers keep
// ownership of theirs.
func (c *ConsistencyCache) Record(sig Signature, res Result) {
	if len(sig) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.entries = c.entries[1:]
	}
	stored := make(Signature, len(sig))
	copy(stored, sig)
	c.entries = append(c.entries, cacheEntry{signature: stored, result: res})
}

// Len reports the current number of entries.
func (c *ConsistencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops all entries. Used by tests and per-session scoping.
func (c *ConsistencyCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

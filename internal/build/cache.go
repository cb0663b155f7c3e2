package build

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

// CacheKey identifies a compiled unit by path and content hash.
type CacheKey string

func cacheKey(path, sha string) CacheKey { return CacheKey(path + "@" + sha) }

// CacheStats exposes basic metrics.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Entries   int64
	Evictions int64
}

// ResultCache is a thread-safe LRU of compile results with a max entry
// count. Watch mode uses it so an unchanged file is not parsed again.
type ResultCache struct {
	entries   *lru.Cache
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewResultCache creates a cache holding up to capacity results. If
// capacity<=0, defaults to 256.
func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = 256
	}
	c := &ResultCache{}
	// only fails for a non-positive size
	c.entries, _ = lru.NewWithEvict(capacity, func(interface{}, interface{}) { c.evictions.Add(1) })
	return c
}

func (c *ResultCache) Get(key CacheKey) (Result, bool) {
	if v, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return v.(Result), true
	}
	c.misses.Add(1)
	return Result{}, false
}

func (c *ResultCache) Put(key CacheKey, r Result) {
	c.entries.Add(key, r)
}

func (c *ResultCache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Entries:   int64(c.entries.Len()),
		Evictions: c.evictions.Load(),
	}
}

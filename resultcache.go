package occurrencedb

import(
	"sync"
	"time"
)

// Report output is a pure function of (dataset signature, report args),
// so results can be cached and replayed bit-identically. The cache key is
// the caller's business; we just age entries out.

type CachedResult struct {
	Created  time.Time
	Headers  []string
	Rows     [][]string
}

type ResultCache struct {
	mu       sync.Mutex
	maxAge   time.Duration
	results  map[string]CachedResult
}

func NewResultCache(maxAge time.Duration) *ResultCache {
	return &ResultCache{
		maxAge: maxAge,
		results: map[string]CachedResult{},
	}
}

func (c *ResultCache)Lookup(key string) (CachedResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res,exists := c.results[key]
	if !exists { return CachedResult{}, false }

	if c.maxAge > 0 && time.Since(res.Created) > c.maxAge {
		delete(c.results, key)
		return CachedResult{}, false
	}
	return res, true
}

func (c *ResultCache)Add(key string, headers []string, rows [][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[key] = CachedResult{ time.Now().UTC(), headers, rows }
}

func (c *ResultCache)AgeOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k,v := range c.results {
		if time.Since(v.Created) > c.maxAge {
			delete (c.results, k)
		}
	}
}

func (c *ResultCache)Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

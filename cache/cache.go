// Package cache keeps the most recent scrape snapshot in memory and bounds
// how often the network is hit.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"broobot/scrape"
	"broobot/tools"
)

// DefaultTTL is how long a snapshot stays fresh.
const DefaultTTL = 24 * time.Hour

// Cache wraps a scrape.Fetcher with a TTL-boxed snapshot. The snapshot is
// replaced wholesale on each successful refresh and served as-is in between.
// A failed or empty refresh keeps serving the last known snapshot; Get never
// fails.
type Cache struct {
	mu          sync.Mutex
	fetcher     scrape.Fetcher
	ttl         time.Duration
	now         func() time.Time
	tools       []tools.Tool
	lastUpdated time.Time
}

// New creates a Cache over the given fetcher.
func New(fetcher scrape.Fetcher, ttl time.Duration) *Cache {
	return NewWithClock(fetcher, ttl, time.Now)
}

// NewWithClock creates a Cache with an injected clock (for testing).
func NewWithClock(fetcher scrape.Fetcher, ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached snapshot, refreshing it first when stale. The
// refresh is serialized under the cache lock, so concurrent misses collapse
// into a single fetch. The returned slice is shared; callers must treat it
// as read-only.
func (c *Cache) Get(ctx context.Context) []tools.Tool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastUpdated.IsZero() && c.now().Sub(c.lastUpdated) < c.ttl {
		return c.tools
	}
	c.refreshLocked(ctx)
	return c.tools
}

// Refresh forces a fetch regardless of TTL, keeping the prior snapshot if
// the fetch fails or comes back empty.
func (c *Cache) Refresh(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked(ctx)
}

// LastUpdated reports when the snapshot was last replaced; zero if never.
func (c *Cache) LastUpdated() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdated
}

// Count reports how many tools the snapshot currently holds.
func (c *Cache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tools)
}

func (c *Cache) refreshLocked(ctx context.Context) {
	fetched, err := c.fetcher.FetchLatest(ctx)
	if err != nil {
		slog.Warn("tool scrape failed, keeping cached snapshot", "error", err, "cached", len(c.tools))
		return
	}
	if len(fetched) == 0 {
		slog.Warn("tool scrape yielded no candidates, keeping cached snapshot", "cached", len(c.tools))
		return
	}
	c.tools = fetched
	c.lastUpdated = c.now()
	slog.Info("tool cache refreshed", "count", len(fetched))
}

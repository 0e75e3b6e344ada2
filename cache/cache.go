// Package cache maps pattern descriptors to compiled matchers so that each
// pattern is compiled once.
//
// A Cache is safe for concurrent use. Lookup-or-insert runs under a single
// mutex; compilation runs outside it, deduplicated per descriptor, so
// concurrent misses for the same descriptor compile once and the cache never
// holds duplicate entries. Failed compilations are not cached.
//
// The cache is unbounded unless WithLimit is given: every distinct
// descriptor stays compiled for the life of the cache. Programs that build
// patterns from unbounded input should set a limit.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/engine/pcre"
	"github.com/coregx/tupleregex/pattern"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Compiles  uint64
	Failures  uint64
	Evictions uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithLimit bounds the cache to n entries, evicting the least recently used.
// n <= 0 leaves the cache unbounded.
func WithLimit(n int) Option {
	return func(c *Cache) {
		c.limit = n
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// Cache holds compiled matchers keyed by descriptor.
type Cache struct {
	engine engine.Engine
	limit  int
	log    zerolog.Logger

	mu      sync.Mutex
	entries map[pattern.Descriptor]engine.Matcher
	lru     *simplelru.LRU[pattern.Descriptor, engine.Matcher]
	stats   Stats

	flight singleflight.Group
}

// New returns a cache compiling with e.
func New(e engine.Engine, opts ...Option) *Cache {
	c := &Cache{engine: e, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.limit > 0 {
		// NewLRU only fails for a non-positive size
		c.lru, _ = simplelru.NewLRU[pattern.Descriptor, engine.Matcher](c.limit, c.onEvict)
	} else {
		c.entries = make(map[pattern.Descriptor]engine.Matcher)
	}
	return c
}

var defaultCache = sync.OnceValue(func() *Cache {
	return New(pcre.New())
})

// Default returns the process-wide cache, compiling with the pcre engine.
func Default() *Cache {
	return defaultCache()
}

// Engine returns the engine the cache compiles with.
func (c *Cache) Engine() engine.Engine {
	return c.engine
}

// Get returns the matcher for d, compiling it on a miss.
func (c *Cache) Get(d pattern.Descriptor) (engine.Matcher, error) {
	if m, ok := c.lookup(d); ok {
		return m, nil
	}
	v, err, _ := c.flight.Do(d.Key(), func() (any, error) {
		// another caller may have finished compiling since our lookup
		if m, ok := c.peek(d); ok {
			return m, nil
		}
		return c.compile(d)
	})
	if err != nil {
		return nil, err
	}
	return v.(engine.Matcher), nil
}

func (c *Cache) compile(d pattern.Descriptor) (engine.Matcher, error) {
	start := time.Now()
	m, err := c.engine.Compile(d)
	if err != nil {
		c.mu.Lock()
		c.stats.Failures++
		c.mu.Unlock()
		c.log.Debug().Err(err).
			Str("pattern", d.Expr).
			Stringer("options", d.Options).
			Str("engine", c.engine.Name()).
			Msg("pattern compilation failed")
		return nil, err
	}
	c.mu.Lock()
	c.stats.Compiles++
	c.store(d, m)
	size := c.lenLocked()
	c.mu.Unlock()
	c.log.Debug().
		Str("pattern", d.Expr).
		Stringer("options", d.Options).
		Str("engine", c.engine.Name()).
		Int("groups", m.NumGroups()).
		Dur("elapsed", time.Since(start)).
		Int("size", size).
		Msg("pattern compiled")
	return m, nil
}

func (c *Cache) lookup(d pattern.Descriptor) (engine.Matcher, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var (
		m  engine.Matcher
		ok bool
	)
	if c.lru != nil {
		m, ok = c.lru.Get(d)
	} else {
		m, ok = c.entries[d]
	}
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return m, ok
}

// peek looks d up without touching counters or recency.
func (c *Cache) peek(d pattern.Descriptor) (engine.Matcher, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		return c.lru.Peek(d)
	}
	m, ok := c.entries[d]
	return m, ok
}

func (c *Cache) store(d pattern.Descriptor, m engine.Matcher) {
	if c.lru != nil {
		c.lru.Add(d, m)
		return
	}
	c.entries[d] = m
}

// onEvict runs with c.mu held, from inside lru.Add.
func (c *Cache) onEvict(d pattern.Descriptor, _ engine.Matcher) {
	c.stats.Evictions++
	c.log.Debug().
		Str("pattern", d.Expr).
		Stringer("options", d.Options).
		Msg("pattern evicted")
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lenLocked()
}

func (c *Cache) lenLocked() int {
	if c.lru != nil {
		return c.lru.Len()
	}
	return len(c.entries)
}

// Contains reports whether d is cached, without compiling it.
func (c *Cache) Contains(d pattern.Descriptor) bool {
	_, ok := c.peek(d)
	return ok
}

// Purge drops every cached matcher. Counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		// Purge reports each entry to onEvict; those are not evictions
		evictions := c.stats.Evictions
		c.lru.Purge()
		c.stats.Evictions = evictions
		return
	}
	clear(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

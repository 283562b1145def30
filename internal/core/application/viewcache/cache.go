package viewcache

import (
	"context"
	"sync"

	"thumathina/internal/core/ports"
)

// entry is the cached state of a single scope key.
// generation is bumped on every invalidation so a fetch started before the
// invalidation cannot store its stale result.
type entry struct {
	value      any
	hasValue   bool
	dirty      bool
	generation uint64
}

// Cache is the in-memory view cache backing one caller session. It maps
// scope keys to their last-known view plus a dirty flag.
//
// Reads consult the cache; a dirty or absent entry forces a refetch from the
// entity store, and a clean hit is served without touching the store.
// Writes never mutate entries directly: mutations call Invalidate with the
// scope keys computed by the static rule table, and every key is marked
// dirty before the mutation result is returned to the caller.
//
// A fetch races only against invalidation, and invalidation always wins:
// the fetch captures the entry generation before calling the store, and its
// result is discarded when the generation has moved on. A cancelled fetch
// likewise never clears the dirty flag.
type Cache struct {
	mu      sync.Mutex
	entries map[ports.ScopeKey]*entry
}

// NewCache creates an empty view cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[ports.ScopeKey]*entry),
	}
}

// Read returns the cached value for the scope, refetching when the entry is
// dirty or absent. Fetch errors are returned as-is and leave the entry
// untouched, so a failed refresh keeps the scope dirty for the next read.
func (c *Cache) Read(ctx context.Context, key ports.ScopeKey, fetch ports.FetchFunc) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{dirty: true}
		c.entries[key] = e
	}

	if e.hasValue && !e.dirty {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}

	generation := e.generation
	c.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Abandoned read: the result must not clear the dirty flag.
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.entries[key]
	if current.generation == generation {
		current.value = value
		current.hasValue = true
		current.dirty = false
	}

	return value, nil
}

// Invalidate marks every given scope dirty and bumps its generation so
// in-flight fetches for the old state cannot be stored.
func (c *Cache) Invalidate(keys ...ports.ScopeKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		e, ok := c.entries[key]
		if !ok {
			e = &entry{}
			c.entries[key] = e
		}
		e.dirty = true
		e.generation++
	}
}

// Contains reports whether the cache holds a clean value for the scope.
// Used by tests and by callers that must verify no entry was created for a
// scope after a rejected operation.
func (c *Cache) Contains(key ports.ScopeKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && e.hasValue && !e.dirty
}

package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/babyBee3443/biogenius-sub001/internal/logger"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// collection manages one entity type as a single JSON array blob in the KV
// store. It keeps an in-memory copy to avoid redundant deserialization, but
// every read path re-synchronizes from durable storage first; the cache is
// never the source of truth.
type collection[T any] struct {
	mu   sync.Mutex
	kv   store.KV
	key  string
	id   func(*T) string
	seed func() []T // optional defaults for first read on empty storage

	cache []T
}

func newCollection[T any](kv store.KV, key string, id func(*T) string) *collection[T] {
	return &collection[T]{kv: kv, key: key, id: id}
}

// load refreshes the cache from storage and returns the live slice. Read and
// parse failures are recovered to an empty collection and logged; they never
// reach callers as errors.
func (c *collection[T]) load(ctx context.Context) []T {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		logger.Error("collection read failed, treating as empty",
			slog.String("collection", c.key),
			slog.String("error", err.Error()))
		c.cache = []T{}
		return c.cache
	}

	if raw == nil {
		if c.seed != nil {
			c.cache = c.seed()
			// Persist the seed so later readers observe the same defaults.
			if err := c.flush(ctx); err != nil {
				logger.Error("failed to persist seed defaults",
					slog.String("collection", c.key),
					slog.String("error", err.Error()))
			}
			return c.cache
		}
		c.cache = []T{}
		return c.cache
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Error("collection blob corrupted, treating as empty",
			slog.String("collection", c.key),
			slog.String("error", err.Error()))
		c.cache = []T{}
		return c.cache
	}
	if items == nil {
		items = []T{}
	}
	c.cache = items
	return c.cache
}

// flush re-serializes the whole collection to storage. Whole-blob overwrite
// is the contract; partial writes do not exist at this data scale.
func (c *collection[T]) flush(ctx context.Context) error {
	raw, err := json.Marshal(c.cache)
	if err != nil {
		return err
	}
	return c.kv.Put(ctx, c.key, raw)
}

// clone deep-copies a record so callers can never mutate the cache.
func clone[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		out = append(out, clone(v))
	}
	return out
}

// List returns deep copies of all records.
func (c *collection[T]) List(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneSlice(c.load(ctx))
}

// GetByID returns a deep copy of the record with the given id, or nil.
func (c *collection[T]) GetByID(ctx context.Context, id string) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.load(ctx) {
		if c.id(&c.cache[i]) == id {
			v := clone(c.cache[i])
			return &v
		}
	}
	return nil
}

// Find returns a deep copy of the first record matching the predicate, or nil.
func (c *collection[T]) Find(ctx context.Context, match func(*T) bool) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.load(ctx) {
		if match(&c.cache[i]) {
			v := clone(c.cache[i])
			return &v
		}
	}
	return nil
}

// Insert appends a record and persists the collection.
func (c *collection[T]) Insert(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	c.cache = append(c.cache, item)
	if err := c.flush(ctx); err != nil {
		var zero T
		return zero, err
	}
	return clone(item), nil
}

// Mutate applies fn to a copy of the record with the given id and persists
// the collection only when fn succeeds. A non-nil error from fn aborts the
// mutation with nothing written. It returns a deep copy of the mutated
// record, or nil when the id is absent.
func (c *collection[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.load(ctx) {
		if c.id(&c.cache[i]) == id {
			v := clone(c.cache[i])
			if err := fn(&v); err != nil {
				return nil, err
			}
			c.cache[i] = v
			if err := c.flush(ctx); err != nil {
				return nil, err
			}
			out := clone(v)
			return &out, nil
		}
	}
	return nil, nil
}

// Delete removes the record with the given id and persists the collection.
// It reports whether a record was removed.
func (c *collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.load(ctx)
	for i := range items {
		if c.id(&items[i]) == id {
			c.cache = append(items[:i:i], items[i+1:]...)
			if err := c.flush(ctx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

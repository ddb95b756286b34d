package store

import (
	"sync"

	"voyago/pkg/utils"
)

// Collection is an ordered in-memory collection of entities keyed by a
// string id. Additions prepend, so iteration order is newest-first. Every
// mutation reports whether it matched; nothing fails silently.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// List returns a copy of the collection in newest-first order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, utils.ErrNotFound
}

// Add prepends the entity. A colliding id is rejected rather than letting
// two entities share one id.
func (c *Collection[T]) Add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for _, existing := range c.items {
		if c.idOf(existing) == id {
			return utils.ErrDuplicateID
		}
	}

	c.items = append([]T{item}, c.items...)
	return nil
}

// Update replaces the entity whose id matches, keeping its position.
func (c *Collection[T]) Update(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for i, existing := range c.items {
		if c.idOf(existing) == id {
			c.items[i] = item
			return nil
		}
	}
	return utils.ErrNotFound
}

func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if c.idOf(existing) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

// Upsert updates in place when the id exists, otherwise prepends. Used when
// restoring reverted entities whose original may have been deleted since.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	for i, existing := range c.items {
		if c.idOf(existing) == id {
			c.items[i] = item
			return
		}
	}
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the whole collection, preserving the given order. Used by
// snapshot import.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
}

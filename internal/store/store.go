// Package store provides in-memory per-user snapshots of domain collections.
//
// Each service keeps one Collection (or Singleton) per domain type. A fetch
// from the database replaces the user's whole snapshot instead of merging
// into it, so records deleted remotely disappear locally as well. Mutations
// are written to the snapshot only after the database commit succeeds, which
// keeps the snapshot free of phantom entries.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Collection holds an ordered per-user snapshot of items of type T.
// Items are addressed by a caller-supplied string key.
type Collection[T any] struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]*snapshot[T]
	keyOf     func(T) string
}

type snapshot[T any] struct {
	// reserved is the highest generation handed out by Begin. applied is the
	// generation of the data currently held. Replace with a generation at or
	// below applied is a stale fetch result and is dropped.
	reserved uint64
	applied  uint64
	loaded   bool
	items    []T
	index    map[string]int
}

// NewCollection creates an empty collection. keyOf extracts the snapshot key
// of an item, typically its ID rendered as a string.
func NewCollection[T any](keyOf func(T) string) *Collection[T] {
	return &Collection[T]{
		snapshots: make(map[uuid.UUID]*snapshot[T]),
		keyOf:     keyOf,
	}
}

func (c *Collection[T]) snapshotFor(userID uuid.UUID) *snapshot[T] {
	snap, ok := c.snapshots[userID]
	if !ok {
		snap = &snapshot[T]{index: make(map[string]int)}
		c.snapshots[userID] = snap
	}
	return snap
}

// Begin reserves a generation number for an upcoming fetch. The caller passes
// the number to Replace once the fetch completes; results from an older fetch
// that finish late lose to the newer one.
func (c *Collection[T]) Begin(userID uuid.UUID) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snapshotFor(userID)
	snap.reserved++

	return snap.reserved
}

// Replace swaps the user's entire snapshot with items. It reports whether the
// replacement was applied; a false return means a newer fetch already landed.
func (c *Collection[T]) Replace(userID uuid.UUID, generation uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snapshotFor(userID)
	if generation <= snap.applied {
		return false
	}

	snap.applied = generation
	snap.loaded = true
	snap.items = make([]T, len(items))
	copy(snap.items, items)
	snap.index = make(map[string]int, len(items))
	for i, item := range items {
		snap.index[c.keyOf(item)] = i
	}

	return true
}

// Put inserts or overwrites a single item in the user's snapshot. New items
// are appended at the end; existing items keep their position.
func (c *Collection[T]) Put(userID uuid.UUID, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snapshotFor(userID)
	key := c.keyOf(item)
	if i, ok := snap.index[key]; ok {
		snap.items[i] = item
		return
	}

	snap.index[key] = len(snap.items)
	snap.items = append(snap.items, item)
}

// Patch applies fn to the item with the given key and stores the result in
// place. It reports whether the item was present.
func (c *Collection[T]) Patch(userID uuid.UUID, key string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, ok := c.snapshots[userID]
	if !ok {
		return false
	}
	i, ok := snap.index[key]
	if !ok {
		return false
	}

	snap.items[i] = fn(snap.items[i])

	return true
}

// Remove deletes a single item from the user's snapshot and reports whether
// it was present.
func (c *Collection[T]) Remove(userID uuid.UUID, key string) bool {
	return c.RemoveMany(userID, []string{key}) == 1
}

// RemoveMany deletes a set of items from the user's snapshot in one pass,
// preserving the order of the survivors. It returns the number removed.
func (c *Collection[T]) RemoveMany(userID uuid.UUID, keys []string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, ok := c.snapshots[userID]
	if !ok {
		return 0
	}

	doomed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, present := snap.index[key]; present {
			doomed[key] = struct{}{}
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := snap.items[:0]
	index := make(map[string]int, len(snap.items)-len(doomed))
	for _, item := range snap.items {
		key := c.keyOf(item)
		if _, gone := doomed[key]; gone {
			continue
		}
		index[key] = len(kept)
		kept = append(kept, item)
	}
	snap.items = kept
	snap.index = index

	return len(doomed)
}

// Get returns the item with the given key from the user's snapshot.
func (c *Collection[T]) Get(userID uuid.UUID, key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	snap, ok := c.snapshots[userID]
	if !ok {
		return zero, false
	}
	i, ok := snap.index[key]
	if !ok {
		return zero, false
	}

	return snap.items[i], true
}

// List returns a copy of the user's snapshot in its stored order.
func (c *Collection[T]) List(userID uuid.UUID) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.snapshots[userID]
	if !ok {
		return nil
	}

	out := make([]T, len(snap.items))
	copy(out, snap.items)

	return out
}

// Len returns the number of items in the user's snapshot.
func (c *Collection[T]) Len(userID uuid.UUID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.snapshots[userID]
	if !ok {
		return 0
	}

	return len(snap.items)
}

// Loaded reports whether at least one fetch has populated the user's snapshot.
func (c *Collection[T]) Loaded(userID uuid.UUID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.snapshots[userID]

	return ok && snap.loaded
}

// Reset discards the user's snapshot entirely, e.g. on logout.
func (c *Collection[T]) Reset(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.snapshots, userID)
}

// Singleton holds a per-user snapshot of a single value of type T, used for
// records a user has exactly one of (settings, billing account).
type Singleton[T any] struct {
	mu     sync.RWMutex
	values map[uuid.UUID]T
}

// NewSingleton creates an empty singleton store.
func NewSingleton[T any]() *Singleton[T] {
	return &Singleton[T]{values: make(map[uuid.UUID]T)}
}

// Set stores the user's value, replacing any previous one.
func (s *Singleton[T]) Set(userID uuid.UUID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[userID] = value
}

// Get returns the user's value and whether one has been stored.
func (s *Singleton[T]) Get(userID uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[userID]

	return value, ok
}

// Patch applies fn to the stored value and keeps the result. It reports
// whether a value was present to patch.
func (s *Singleton[T]) Patch(userID uuid.UUID, fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[userID]
	if !ok {
		return false
	}

	s.values[userID] = fn(value)

	return true
}

// Reset discards the user's value.
func (s *Singleton[T]) Reset(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, userID)
}

package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func newTestCollection() *Collection[item] {
	return NewCollection(func(it item) string { return it.ID })
}

func TestCollection_Replace_SwapsWholeSnapshot(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	gen := c.Begin(userID)
	ok := c.Replace(userID, gen, []item{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}})
	require.True(t, ok)
	assert.Equal(t, 2, c.Len(userID))

	// A later fetch returns a different set; the old entries must vanish.
	gen = c.Begin(userID)
	ok = c.Replace(userID, gen, []item{{ID: "c", Name: "third"}})
	require.True(t, ok)

	assert.Equal(t, 1, c.Len(userID))
	_, found := c.Get(userID, "a")
	assert.False(t, found)
	got, found := c.Get(userID, "c")
	require.True(t, found)
	assert.Equal(t, "third", got.Name)
}

func TestCollection_Replace_DropsStaleGeneration(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	slowGen := c.Begin(userID)
	fastGen := c.Begin(userID)

	// The fetch started second completes first.
	require.True(t, c.Replace(userID, fastGen, []item{{ID: "new"}}))

	// The fetch started first completes late and must lose.
	assert.False(t, c.Replace(userID, slowGen, []item{{ID: "old"}}))

	_, found := c.Get(userID, "old")
	assert.False(t, found)
	_, found = c.Get(userID, "new")
	assert.True(t, found)
}

func TestCollection_Put_AppendsNewAndOverwritesExisting(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	gen := c.Begin(userID)
	require.True(t, c.Replace(userID, gen, []item{{ID: "a", Name: "one"}}))

	c.Put(userID, item{ID: "b", Name: "two"})
	c.Put(userID, item{ID: "a", Name: "one-updated"})

	list := c.List(userID)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "one-updated", list[0].Name)
	assert.Equal(t, "b", list[1].ID)
}

func TestCollection_Patch_AppliesInPlace(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	c.Put(userID, item{ID: "a", Name: "before"})

	ok := c.Patch(userID, "a", func(it item) item {
		it.Name = "after"
		return it
	})
	require.True(t, ok)

	got, found := c.Get(userID, "a")
	require.True(t, found)
	assert.Equal(t, "after", got.Name)

	assert.False(t, c.Patch(userID, "missing", func(it item) item { return it }))
}

func TestCollection_RemoveMany_PreservesOrderAndCounts(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	gen := c.Begin(userID)
	require.True(t, c.Replace(userID, gen, []item{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}))

	removed := c.RemoveMany(userID, []string{"b", "d", "missing"})
	assert.Equal(t, 2, removed)

	list := c.List(userID)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)

	// Index must stay consistent after compaction.
	got, found := c.Get(userID, "c")
	require.True(t, found)
	assert.Equal(t, "c", got.ID)
}

func TestCollection_IsolatesUsers(t *testing.T) {
	c := newTestCollection()
	alice := uuid.New()
	bob := uuid.New()

	c.Put(alice, item{ID: "a"})
	c.Put(bob, item{ID: "b"})

	assert.Equal(t, 1, c.Len(alice))
	assert.Equal(t, 1, c.Len(bob))

	c.Reset(alice)

	assert.Equal(t, 0, c.Len(alice))
	assert.False(t, c.Loaded(alice))
	assert.Equal(t, 1, c.Len(bob))
}

func TestCollection_Loaded_RequiresReplace(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	assert.False(t, c.Loaded(userID))

	// A lone Put does not count as a completed fetch.
	c.Put(userID, item{ID: "a"})
	assert.False(t, c.Loaded(userID))

	gen := c.Begin(userID)
	require.True(t, c.Replace(userID, gen, nil))
	assert.True(t, c.Loaded(userID))
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := newTestCollection()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("item-%d", n)
			c.Put(userID, item{ID: key})
			c.Get(userID, key)
			c.List(userID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, c.Len(userID))
}

func TestSingleton_SetGetPatchReset(t *testing.T) {
	s := NewSingleton[item]()
	userID := uuid.New()

	_, ok := s.Get(userID)
	assert.False(t, ok)

	s.Set(userID, item{ID: "a", Name: "one"})
	got, ok := s.Get(userID)
	require.True(t, ok)
	assert.Equal(t, "one", got.Name)

	ok = s.Patch(userID, func(it item) item {
		it.Name = "two"
		return it
	})
	require.True(t, ok)
	got, _ = s.Get(userID)
	assert.Equal(t, "two", got.Name)

	s.Reset(userID)
	_, ok = s.Get(userID)
	assert.False(t, ok)
	assert.False(t, s.Patch(userID, func(it item) item { return it }))
}

package cached

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisesaying/wisesaying/internal/storetest"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/store"
	"github.com/wisesaying/wisesaying/wisesaying/store/memory"
)

// countingStore records how many lookups reach the wrapped store.
type countingStore struct {
	store.Store
	lookups int
}

func (c *countingStore) GetByID(id int) (*say.Say, error) {
	c.lookups++
	return c.Store.GetByID(id)
}

func TestStore_Contract(t *testing.T) {
	storetest.TestContract(t, func(t *testing.T) store.Store {
		return New(memory.New(), time.Minute)
	})
}

func TestStore_CachesLookups(t *testing.T) {
	backing := &countingStore{Store: memory.New()}
	s := New(backing, 0)

	id, err := s.Create(say.Draft{Author: "a", Content: "b"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		found, err := s.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "a", found.Author)
	}
	assert.Equal(t, 1, backing.lookups)
}

func TestStore_InvalidatesOnWrite(t *testing.T) {
	backing := &countingStore{Store: memory.New()}
	s := New(backing, time.Minute)

	id, err := s.Create(say.Draft{Author: "a", Content: "b"})
	require.NoError(t, err)

	_, err = s.GetByID(id)
	require.NoError(t, err)

	require.NoError(t, s.Update(id, say.Draft{Author: "c", Content: "d"}))
	found, err := s.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "c", found.Author)

	require.NoError(t, s.Delete(id))
	found, err = s.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.Equal(t, 3, backing.lookups)
}

func TestStore_MissesAreNotCached(t *testing.T) {
	backing := &countingStore{Store: memory.New()}
	s := New(backing, time.Minute)

	for i := 0; i < 2; i++ {
		found, err := s.GetByID(1)
		require.NoError(t, err)
		assert.Nil(t, found)
	}
	assert.Equal(t, 2, backing.lookups)
}

/*
Package cached wraps a store with a read-through cache of individual sayings.
*/
package cached

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var _ store.Store = (*Store)(nil)

// Store caches GetByID lookups of the wrapped store. Listings always go to the wrapped store.
type Store struct {
	store.Store
	cache *cache.Cache
}

// New wraps the given store. Entries expire after ttl (a ttl <= 0 means entries never expire).
func New(s store.Store, ttl time.Duration) *Store {
	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	return &Store{
		Store: s,
		cache: cache.New(expiration, 2*expiration),
	}
}

// Unwrap returns the underlying store.
func (s *Store) Unwrap() store.Store {
	return s.Store
}

func (s *Store) GetByID(id int) (*say.Say, error) {
	key := strconv.Itoa(id)
	if hit, ok := s.cache.Get(key); ok {
		log.Tracef("cache hit for saying=%d", id)
		found := hit.(say.Say)
		return &found, nil
	}

	found, err := s.Store.GetByID(id)
	if err != nil || found == nil {
		return found, err
	}
	s.cache.SetDefault(key, *found)
	return found, nil
}

func (s *Store) Update(id int, d say.Draft) error {
	s.cache.Delete(strconv.Itoa(id))
	return s.Store.Update(id, d)
}

func (s *Store) Delete(id int) error {
	s.cache.Delete(strconv.Itoa(id))
	return s.Store.Delete(id)
}

func (s *Store) Build() error {
	s.cache.Flush()
	return s.Store.Build()
}

func (s *Store) Close() error {
	s.cache.Flush()
	return s.Store.Close()
}

package memory

import (
	"sync"

	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var _ store.Store = (*Store)(nil)

// Store keeps sayings in process memory. Nothing survives the process.
type Store struct {
	lock    sync.RWMutex
	lastID  int
	sayings map[int]say.Say
}

func New() *Store {
	return &Store{
		sayings: make(map[int]say.Say),
	}
}

func (s *Store) Create(d say.Draft) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastID++
	s.sayings[s.lastID] = say.New(s.lastID, d)
	return s.lastID, nil
}

func (s *Store) Update(id int, d say.Draft) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.sayings[id]; !ok {
		return sayerr.NotFoundError{ID: id}
	}
	s.sayings[id] = say.New(id, d)
	return nil
}

func (s *Store) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.sayings[id]; !ok {
		return sayerr.NotFoundError{ID: id}
	}
	delete(s.sayings, id)
	return nil
}

func (s *Store) GetByID(id int) (*say.Say, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	found, ok := s.sayings[id]
	if !ok {
		return nil, nil
	}
	return &found, nil
}

func (s *Store) List() ([]say.Say, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.sorted(), nil
}

func (s *Store) Page(cond say.SearchCondition, pageable say.Pageable) (*say.Page, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return say.Slice(cond.Filter(s.sorted()), pageable), nil
}

// Build is a no-op: there is nothing durable to flush to.
func (s *Store) Build() error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) sorted() []say.Say {
	all := make([]say.Say, 0, len(s.sayings))
	for _, v := range s.sayings {
		all = append(all, v)
	}
	say.SortNewestFirst(all)
	return all
}

/*
Package jsonfile keeps every saying in a single "data.json" array, loaded lazily into memory and rewritten on each change.
*/
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/spf13/afero"

	"github.com/wisesaying/wisesaying/internal"
	"github.com/wisesaying/wisesaying/internal/file"
	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var (
	_ store.Store   = (*Store)(nil)
	_ store.Locator = (*Store)(nil)
)

// seedCount is the number of placeholder sayings written into an empty store when seeding is enabled.
const seedCount = 10

type Store struct {
	lock     sync.Mutex
	fs       afero.Fs
	dir      string
	dataPath string
	counter  *file.Counter
	seed     bool

	loaded bool
	// cache holds the sayings in creation (ascending id) order, mirroring data.json
	cache         []say.Say
	persistedHash uint64
}

type Option func(*Store)

// WithSeed fills an empty store with placeholder sayings on first load.
func WithSeed(enabled bool) Option {
	return func(s *Store) { s.seed = enabled }
}

func New(fs afero.Fs, dir string, opts ...Option) *Store {
	s := &Store{
		fs:       fs,
		dir:      dir,
		dataPath: filepath.Join(dir, internal.DataFileName),
		counter:  file.NewCounter(fs, filepath.Join(dir, internal.LastIDFileName)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Location() string {
	return s.dataPath
}

func (s *Store) Create(d say.Draft) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return 0, err
	}

	id, err := s.counter.Next()
	if err != nil {
		return 0, fmt.Errorf("unable to allocate saying id: %w", err)
	}

	s.cache = append(s.cache, say.New(id, d))
	if err := s.persist(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Update(id int, d say.Draft) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return sayerr.NotFoundError{ID: id}
	}
	s.cache[idx] = say.New(id, d)
	return s.persist()
}

func (s *Store) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return sayerr.NotFoundError{ID: id}
	}
	s.cache = append(s.cache[:idx], s.cache[idx+1:]...)
	return s.persist()
}

func (s *Store) GetByID(id int) (*say.Say, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}
	found := s.cache[idx]
	return &found, nil
}

func (s *Store) List() ([]say.Say, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return nil, err
	}
	return s.newestFirst(), nil
}

func (s *Store) Page(cond say.SearchCondition, pageable say.Pageable) (*say.Page, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return nil, err
	}
	return say.Slice(cond.Filter(s.newestFirst()), pageable), nil
}

// Build rewrites data.json from the in-memory sayings. The write is skipped when the file already holds exactly this content.
func (s *Store) Build() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.loadIfNeeded(); err != nil {
		return err
	}

	hash, err := hashstructure.Hash(s.cache, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("unable to hash sayings: %w", err)
	}
	if hash == s.persistedHash && file.Exists(s.fs, s.dataPath) {
		log.Debugf("%s is up to date, skipping build", s.dataPath)
		return nil
	}
	return s.persist()
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) indexOf(id int) int {
	for i, existing := range s.cache {
		if existing.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) newestFirst() []say.Say {
	all := make([]say.Say, len(s.cache))
	copy(all, s.cache)
	say.SortNewestFirst(all)
	return all
}

func (s *Store) loadIfNeeded() error {
	if s.loaded {
		return nil
	}

	if err := s.ensureFiles(); err != nil {
		return err
	}

	contents, err := afero.ReadFile(s.fs, s.dataPath)
	if err != nil {
		return fmt.Errorf("unable to load %s: %w", s.dataPath, err)
	}

	var sayings []say.Say
	trimmed := bytes.TrimSpace(contents)
	if len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &sayings); err != nil {
			return fmt.Errorf("unable to parse %s: %w", s.dataPath, err)
		}
	}

	s.cache = sayings
	s.loaded = true

	if len(s.cache) == 0 && s.seed {
		lastID, err := s.counter.Current()
		if err != nil {
			return err
		}
		// a store that has issued ids before stays empty; seeding would hand those ids out again
		if lastID == 0 {
			return s.seedPlaceholders()
		}
	}

	s.persistedHash, err = hashstructure.Hash(s.cache, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("unable to hash sayings: %w", err)
	}

	log.Debugf("loaded %d sayings from %s", len(s.cache), s.dataPath)
	return nil
}

func (s *Store) ensureFiles() error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("unable to create store dir=%q: %w", s.dir, err)
	}
	if err := s.counter.Ensure(); err != nil {
		return err
	}
	if !file.Exists(s.fs, s.dataPath) {
		if err := afero.WriteFile(s.fs, s.dataPath, []byte("[]"), 0644); err != nil {
			return fmt.Errorf("unable to create %s: %w", s.dataPath, err)
		}
	}
	return nil
}

func (s *Store) seedPlaceholders() error {
	s.cache = make([]say.Say, 0, seedCount)
	for i := 1; i <= seedCount; i++ {
		s.cache = append(s.cache, say.Say{
			ID:      i,
			Author:  fmt.Sprintf("작자미상 %d", i),
			Content: fmt.Sprintf("명언%d", i),
		})
	}
	if err := s.counter.Set(seedCount); err != nil {
		return err
	}
	log.Infof("seeded %s with %d placeholder sayings", s.dataPath, seedCount)
	return s.persist()
}

// persist writes the cache to data.json as a tab-indented array.
func (s *Store) persist() error {
	records := s.cache
	if records == nil {
		records = []say.Say{}
	}

	contents, err := json.MarshalIndent(records, "", "\t")
	if err != nil {
		return fmt.Errorf("unable to encode sayings: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.dataPath, contents, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", s.dataPath, err)
	}

	hash, err := hashstructure.Hash(s.cache, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("unable to hash sayings: %w", err)
	}
	s.persistedHash = hash
	return nil
}

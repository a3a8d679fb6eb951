/*
Package perfile stores each saying as its own JSON document ("<id>.json") beside a "lastId.txt" counter file.
*/
package perfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

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

var recordPattern = regexp.MustCompile(`^\d+\.json$`)

type Store struct {
	lock    sync.Mutex
	fs      afero.Fs
	dir     string
	counter *file.Counter
}

// New creates a store rooted at the given directory. The directory and counter file are created on first use.
func New(fs afero.Fs, dir string) *Store {
	return &Store{
		fs:      fs,
		dir:     dir,
		counter: file.NewCounter(fs, filepath.Join(dir, internal.LastIDFileName)),
	}
}

func (s *Store) Location() string {
	return s.dir
}

func (s *Store) Create(d say.Draft) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.ensureDir(); err != nil {
		return 0, err
	}

	id, err := s.counter.Next()
	if err != nil {
		return 0, fmt.Errorf("unable to allocate saying id: %w", err)
	}

	if err := s.write(say.New(id, d)); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Update(id int, d say.Draft) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.ensureDir(); err != nil {
		return err
	}
	if !file.Exists(s.fs, s.recordPath(id)) {
		return sayerr.NotFoundError{ID: id}
	}
	return s.write(say.New(id, d))
}

func (s *Store) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.ensureDir(); err != nil {
		return err
	}
	target := s.recordPath(id)
	if !file.Exists(s.fs, target) {
		return sayerr.NotFoundError{ID: id}
	}
	if err := s.fs.Remove(target); err != nil {
		return fmt.Errorf("unable to delete saying=%d: %w", id, err)
	}
	return nil
}

func (s *Store) GetByID(id int) (*say.Say, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	target := s.recordPath(id)
	if !file.Exists(s.fs, target) {
		return nil, nil
	}
	found, err := s.read(target)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *Store) List() ([]say.Say, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.readAll()
}

func (s *Store) Page(cond say.SearchCondition, pageable say.Pageable) (*say.Page, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	return say.Slice(cond.Filter(all), pageable), nil
}

// Build is a no-op: every mutation is already written through to its own record file.
func (s *Store) Build() error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) ensureDir() error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("unable to create store dir=%q: %w", s.dir, err)
	}
	return s.counter.Ensure()
}

func (s *Store) recordPath(id int) string {
	return filepath.Join(s.dir, strconv.Itoa(id)+".json")
}

func (s *Store) write(record say.Say) error {
	contents, err := json.MarshalIndent(record, "", "\t")
	if err != nil {
		return fmt.Errorf("unable to encode saying=%d: %w", record.ID, err)
	}
	contents = append(contents, '\n')

	if err := afero.WriteFile(s.fs, s.recordPath(record.ID), contents, 0644); err != nil {
		return fmt.Errorf("unable to write saying=%d: %w", record.ID, err)
	}
	return nil
}

func (s *Store) read(path string) (say.Say, error) {
	contents, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return say.Say{}, fmt.Errorf("unable to read saying file=%q: %w", path, err)
	}
	return parseRecord(contents)
}

func (s *Store) readAll() ([]say.Say, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list store dir=%q: %w", s.dir, err)
	}

	var errs error
	all := make([]say.Say, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !recordPattern.MatchString(entry.Name()) {
			continue
		}
		record, err := s.read(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		all = append(all, record)
	}
	if errs != nil {
		return nil, errs
	}

	say.SortNewestFirst(all)
	log.Tracef("read %d saying records from %q", len(all), s.dir)
	return all, nil
}

// parseRecord extracts a saying from a record document. Only the id is required; other fields default to empty.
func parseRecord(contents []byte) (say.Say, error) {
	if !gjson.ValidBytes(contents) {
		return say.Say{}, fmt.Errorf("invalid saying record: %w", os.ErrInvalid)
	}

	fields := gjson.GetManyBytes(contents, "id", "content", "author")
	if !fields[0].Exists() {
		return say.Say{}, fmt.Errorf("saying record has no id")
	}

	return say.Say{
		ID:      int(fields[0].Int()),
		Content: fields[1].String(),
		Author:  fields[2].String(),
	}, nil
}

package store

import (
	"io"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

// Reader is the read side of a saying store.
type Reader interface {
	// GetByID returns the saying with the given id, or nil (and no error) when it does not exist.
	GetByID(id int) (*say.Say, error)
	// List returns every saying, newest first.
	List() ([]say.Say, error)
	// Page returns the requested newest-first slice of the sayings matching the condition.
	Page(cond say.SearchCondition, pageable say.Pageable) (*say.Page, error)
}

// Writer is the write side of a saying store. Update and Delete return sayerr.ErrNotFound for unknown ids.
type Writer interface {
	Create(d say.Draft) (int, error)
	Update(id int, d say.Draft) error
	Delete(id int) error
	// Build flushes all sayings to the store's durable export form (a no-op for stores without one).
	Build() error
}

// Store is a complete saying store.
type Store interface {
	Reader
	Writer
	io.Closer
}

// Locator is implemented by stores that persist to a describable location (a directory, a DSN).
type Locator interface {
	Location() string
}

// Migrator is implemented by stores that manage a schema.
type Migrator interface {
	// Migrate creates any missing schema objects.
	Migrate() error
	// Reset drops and recreates the schema, discarding all sayings and restarting ids at 1.
	Reset() error
}

package wisesaying

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/store"
	"github.com/wisesaying/wisesaying/wisesaying/store/cached"
	"github.com/wisesaying/wisesaying/wisesaying/store/jsonfile"
	"github.com/wisesaying/wisesaying/wisesaying/store/memory"
	"github.com/wisesaying/wisesaying/wisesaying/store/perfile"
	"github.com/wisesaying/wisesaying/wisesaying/store/sql"
)

type StoreKind string

const (
	MemoryStore   StoreKind = "memory"
	PerFileStore  StoreKind = "perfile"
	JSONFileStore StoreKind = "jsonfile"
	MySQLStore    StoreKind = "mysql"
	SQLiteStore   StoreKind = "sqlite3"
)

var StoreKinds = []StoreKind{MemoryStore, PerFileStore, JSONFileStore, MySQLStore, SQLiteStore}

// ParseStoreKind matches the user value against the known store kinds (case insensitive).
func ParseStoreKind(value string) (StoreKind, error) {
	for _, k := range StoreKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(value)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown store kind: %q (expected one of %v)", value, StoreKinds)
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// StoreConfig describes which store to open and where its data lives.
type StoreConfig struct {
	Kind StoreKind
	// Dir is the data directory of the file backed stores
	Dir   string
	Seed  bool
	SQL   sql.Config
	Cache CacheConfig
	// Fs defaults to the OS filesystem
	Fs afero.Fs
}

// OpenStore creates the configured store, wrapping it with a read-through cache when enabled.
func OpenStore(cfg StoreConfig) (store.Store, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Cache.Enabled {
		log.Debugf("caching saying lookups (ttl=%s)", cfg.Cache.TTL)
		return cached.New(s, cfg.Cache.TTL), nil
	}
	return s, nil
}

func openStore(cfg StoreConfig) (store.Store, error) {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	switch cfg.Kind {
	case MemoryStore:
		return memory.New(), nil
	case PerFileStore:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("no store directory given for %q store", cfg.Kind)
		}
		return perfile.New(fs, cfg.Dir), nil
	case JSONFileStore:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("no store directory given for %q store", cfg.Kind)
		}
		return jsonfile.New(fs, cfg.Dir, jsonfile.WithSeed(cfg.Seed)), nil
	case MySQLStore, SQLiteStore:
		sqlCfg := cfg.SQL
		sqlCfg.Dialect = string(cfg.Kind)
		s, err := sql.New(sqlCfg)
		if err != nil {
			return nil, fmt.Errorf("unable to open %s store: %w", cfg.Kind, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store kind: %q", cfg.Kind)
	}
}

// Unwrap removes any decorators (such as the read-through cache) from the store.
func Unwrap(s store.Store) store.Store {
	for {
		w, ok := s.(interface{ Unwrap() store.Store })
		if !ok {
			return s
		}
		s = w.Unwrap()
	}
}

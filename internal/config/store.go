package config

import (
	"fmt"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/wisesaying/wisesaying/internal"
	"github.com/wisesaying/wisesaying/wisesaying"
	"github.com/wisesaying/wisesaying/wisesaying/store/sql"
)

type store struct {
	Kind    string               `yaml:"kind" json:"kind" mapstructure:"kind"`
	KindOpt wisesaying.StoreKind `yaml:"-" json:"-"`
	Dir     string               `yaml:"dir" json:"dir" mapstructure:"dir"`    // data directory of the perfile and jsonfile stores
	Seed    bool                 `yaml:"seed" json:"seed" mapstructure:"seed"` // fill an empty jsonfile store with placeholder sayings
	SQL     sqlStore             `yaml:"sql" json:"sql" mapstructure:"sql"`
	Cache   cache                `yaml:"cache" json:"cache" mapstructure:"cache"`
}

type sqlStore struct {
	Host     string `yaml:"host" json:"host" mapstructure:"host"`
	Port     int    `yaml:"port" json:"port" mapstructure:"port"`
	User     string `yaml:"user" json:"user" mapstructure:"user"`
	Password string `yaml:"-" json:"-" mapstructure:"password"`
	Database string `yaml:"database" json:"database" mapstructure:"database"`
	Path     string `yaml:"path" json:"path" mapstructure:"path"` // database file for the sqlite3 store
}

type cache struct {
	Enabled bool          `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl" mapstructure:"ttl"`
}

func (cfg store) loadDefaultValues(v *viper.Viper) {
	// e.g. ~/.local/share/wisesaying/db
	v.SetDefault("store.kind", string(wisesaying.JSONFileStore))
	v.SetDefault("store.dir", path.Join(xdg.DataHome, internal.ApplicationName, "db"))
	v.SetDefault("store.seed", false)
	v.SetDefault("store.sql.host", "localhost")
	v.SetDefault("store.sql.port", 3306)
	v.SetDefault("store.sql.user", "root")
	v.SetDefault("store.sql.password", "")
	v.SetDefault("store.sql.database", "wise_saying")
	v.SetDefault("store.sql.path", path.Join(xdg.DataHome, internal.ApplicationName, internal.ApplicationName+".db"))
	v.SetDefault("store.cache.enabled", false)
	v.SetDefault("store.cache.ttl", 5*time.Minute)
}

func (cfg *store) parseConfigValues() error {
	kind, err := wisesaying.ParseStoreKind(cfg.Kind)
	if err != nil {
		return fmt.Errorf("bad store kind: %w", err)
	}
	cfg.KindOpt = kind

	for _, p := range []*string{&cfg.Dir, &cfg.SQL.Path} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("unable to expand store path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

func (cfg store) ToStoreConfig() wisesaying.StoreConfig {
	return wisesaying.StoreConfig{
		Kind: cfg.KindOpt,
		Dir:  cfg.Dir,
		Seed: cfg.Seed,
		SQL: sql.Config{
			Dialect:  string(cfg.KindOpt),
			Host:     cfg.SQL.Host,
			Port:     cfg.SQL.Port,
			User:     cfg.SQL.User,
			Password: cfg.SQL.Password,
			Database: cfg.SQL.Database,
			Path:     cfg.SQL.Path,
		},
		Cache: wisesaying.CacheConfig{
			Enabled: cfg.Cache.Enabled,
			TTL:     cfg.Cache.TTL,
		},
	}
}

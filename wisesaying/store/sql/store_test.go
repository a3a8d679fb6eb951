package sql

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisesaying/wisesaying/internal/storetest"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(Config{
		Dialect: SQLiteDialect,
		Path:    filepath.Join(t.TempDir(), "wisesaying.db"),
	})
	require.NoError(t, err)
	return s
}

func TestStore_Contract(t *testing.T) {
	storetest.TestContract(t, func(t *testing.T) store.Store {
		return newTestStore(t)
	})
}

func TestStore_UpdateWithSameValues(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	id, err := s.Create(say.Draft{Author: "a", Content: "b"})
	require.NoError(t, err)

	// an update that changes nothing still targets an existing row
	assert.NoError(t, s.Update(id, say.Draft{Author: "a", Content: "b"}))
}

func TestStore_Reset(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	storetest.Seed(t, s, 3)
	require.NoError(t, s.Reset())

	all, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	id, err := s.Create(say.Draft{Author: "a", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, id, "ids restart after a reset")
}

func TestStore_MigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	storetest.Seed(t, s, 2)
	require.NoError(t, s.Migrate())

	all, err := s.List()
	require.NoError(t, err)
	storetest.AssertIDs(t, []int{2, 1}, all)
}

func TestConfig_ConnectionString(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
		wantErr  bool
	}{
		{
			name: "mysql",
			cfg: Config{
				Dialect:  MySQLDialect,
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "wise_saying",
			},
			expected: "root:secret@tcp(localhost:3306)/wise_saying?clientFoundRows=true&parseTime=true&charset=utf8mb4",
		},
		{
			name:    "mysql without database",
			cfg:     Config{Dialect: MySQLDialect, Host: "localhost", Port: 3306},
			wantErr: true,
		},
		{
			name:     "sqlite",
			cfg:      Config{Dialect: SQLiteDialect, Path: "/tmp/say.db"},
			expected: "file:/tmp/say.db?cache=shared",
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Dialect: SQLiteDialect},
			wantErr: true,
		},
		{
			name:    "unknown dialect",
			cfg:     Config{Dialect: "oracle"},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := test.cfg.ConnectionString()
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestConfig_LocationHidesCredentials(t *testing.T) {
	cfg := Config{Dialect: MySQLDialect, Host: "db", Port: 3306, User: "root", Password: "secret", Database: "wise_saying"}
	assert.Equal(t, "mysql://db:3306/wise_saying", cfg.Location())
	assert.NotContains(t, cfg.Location(), "secret")
}

package sql

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

const (
	MySQLDialect  = "mysql"
	SQLiteDialect = "sqlite3"
)

// Config defines the information needed to connect to the database holding the "say" table.
type Config struct {
	Dialect  string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// Path is the database file used by the sqlite3 dialect
	Path string
}

// ConnectionString creates a gorm connection string for the configured dialect.
func (c Config) ConnectionString() (string, error) {
	switch c.Dialect {
	case MySQLDialect:
		if c.Database == "" {
			return "", fmt.Errorf("no mysql database name given")
		}
		cfg := mysql.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		cfg.DBName = c.Database
		cfg.ParseTime = true
		// report matched (not changed) rows so an update with identical values still counts as found
		cfg.ClientFoundRows = true
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		return cfg.FormatDSN(), nil
	case SQLiteDialect:
		if c.Path == "" {
			return "", fmt.Errorf("no sqlite db filepath given")
		}
		return fmt.Sprintf("file:%s?cache=shared", c.Path), nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", c.Dialect)
	}
}

// Location describes the database without exposing credentials.
func (c Config) Location() string {
	switch c.Dialect {
	case MySQLDialect:
		return fmt.Sprintf("mysql://%s/%s", net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), c.Database)
	case SQLiteDialect:
		return c.Path
	}
	return c.Dialect
}

package sql

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"  // provide the mysql dialect to gorm via import
	_ "github.com/jinzhu/gorm/dialects/sqlite" // provide the sqlite dialect to gorm via import
)

var connectStatements = map[string][]string{
	SQLiteDialect: {
		`PRAGMA foreign_keys = ON`,
	},
}

// open a new connection to the configured database
func open(cfg Config) (*gorm.DB, error) {
	connStr, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}

	dbObj, err := gorm.Open(cfg.Dialect, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to DB: %w", err)
	}

	dbObj.SetLogger(&logAdapter{})
	// statements are only surfaced at trace level (see logAdapter)
	dbObj.LogMode(true)

	for _, sqlStmt := range connectStatements[cfg.Dialect] {
		if err := dbObj.Exec(sqlStmt).Error; err != nil {
			return nil, fmt.Errorf("unable to execute (%s): %w", sqlStmt, err)
		}
	}
	return dbObj, nil
}

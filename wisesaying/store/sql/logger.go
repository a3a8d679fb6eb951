package sql

import (
	"github.com/jinzhu/gorm"

	"github.com/wisesaying/wisesaying/internal/log"
)

// logAdapter routes gorm output into the application logger: statements at trace level, everything else as warnings.
type logAdapter struct{}

func (l *logAdapter) Print(v ...interface{}) {
	if len(v) == 0 {
		return
	}
	if level, ok := v[0].(string); ok && level == "sql" {
		log.Trace(gorm.LogFormatter(v...)...)
		return
	}
	log.Warn(gorm.LogFormatter(v...)...)
}

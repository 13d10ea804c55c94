package store

import (
	"database/sql"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/migrations"
)

// ErrorClassificator decides how a failed database operation should be
// reported to callers.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}

// classify returns the classification of err, treating a missing
// classificator as "everything is non-retryable".
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

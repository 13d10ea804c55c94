// Package migrations embeds the SQL schema of the local database and applies
// it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate applies all pending migrations to db. goose output goes to log;
// a nil log silences it. Nothing is printed to stdout, which the TUI owns.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(newGooseLogger(log))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger adapts *logger.Logger to goose.Logger.
type gooseLogger struct {
	log *logger.Logger
}

func newGooseLogger(log *logger.Logger) goose.Logger {
	if log == nil {
		return goose.NopLogger()
	}
	return gooseLogger{log: log}
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

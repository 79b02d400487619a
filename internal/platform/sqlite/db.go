// Package sqlite implements the store interfaces on top of a SQLite
// database, the persistence engine the platform has always used.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/readlex/readlex-api/internal/migrations"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// Open opens (creating if necessary) the SQLite database at path and applies
// connection pragmas. Use ":memory:" for an in-process throwaway database.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		path,
	)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite admits one writer; a single connection sidesteps SQLITE_BUSY
	// races between pooled connections.
	db.SetMaxOpenConns(1)

	return db, nil
}

// Migrate applies all pending embedded migrations.
func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

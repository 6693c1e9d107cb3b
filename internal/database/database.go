package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
	migrateTimeout  = 30 * time.Second
)

// InitDB opens the database and brings the schema up to date. Without a primary
// URL a local SQLite file (or ":memory:") is used; otherwise the Turso primary.
// The returned teardown closes the connection pool.
func InitDB(dbPath string, primaryURL string, authToken string) (*sql.DB, func(), error) {
	var (
		db      *sql.DB
		dialect goose.Dialect
		err     error
	)

	if primaryURL == "" {
		log.Info("Initializing local SQLite database", "path", dbPath)
		db, err = sql.Open("sqlite3", localDSN(dbPath))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local database: %w", err)
		}
		if dbPath == ":memory:" {
			// every connection to :memory: is a separate database
			db.SetMaxOpenConns(1)
		} else {
			db.SetMaxOpenConns(maxOpenConns)
			db.SetMaxIdleConns(maxIdleConns)
		}
	} else {
		log.Info("Initializing Turso database", "url", primaryURL)
		db, err = sql.Open("libsql", primaryURL+"?authToken="+authToken)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open db %s: %w", primaryURL, err)
		}
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			log.Warn("Could not enable foreign keys on remote database", "error", err)
		}
	}
	dialect = dialectFor(primaryURL)
	db.SetConnMaxLifetime(connMaxLifetime)

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Warn("Error closing database connection", "error", err)
		}
	}

	if err := runMigrations(db, dialect); err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database initialized successfully")
	return db, teardown, nil
}

// dialectFor picks the goose dialect. libsql speaks the SQLite dialect, so
// Turso primaries share it with local files.
func dialectFor(primaryURL string) goose.Dialect {
	if primaryURL != "" {
		log.Debug("Using SQLite migration dialect for libsql", "url", primaryURL)
	}
	return goose.DialectSQLite3
}

func localDSN(dbPath string) string {
	if dbPath == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", dbPath)
}

func runMigrations(db *sql.DB, dialect goose.Dialect) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}
	for _, r := range results {
		log.Debug("Applied migration", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	return nil
}

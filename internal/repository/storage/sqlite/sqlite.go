package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	Connection *sql.DB
}

// New - opens the database file, creating its directory if needed.
func New(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("can't create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init creates the session table.
func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS users (
		username   TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}

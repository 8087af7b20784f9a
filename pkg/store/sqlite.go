package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"tableflip.dev/dietlog/pkg/entry"
)

// SQLiteFile is the database file name inside the base path.
const SQLiteFile = "dietlog.db"

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// NewSQLite keeps the collection as one row of a key-value table in
// basePath/dietlog.db. basePath may also be MemoryDSN.
func NewSQLite(basePath string) (Backend, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required")
	}
	dsn := basePath
	if basePath != MemoryDSN {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure base path: %w", err)
		}
		dsn = filepath.Join(basePath, SQLiteFile)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if basePath == MemoryDSN {
		// Every connection to :memory: is a different database.
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}

	s := &sqliteStorage{db: db, basePath: basePath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate database: %w", err)
	}
	return s, nil
}

type sqliteStorage struct {
	db       *sql.DB
	basePath string
}

func (s *sqliteStorage) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

func (s *sqliteStorage) LoadAll(ctx context.Context) ([]entry.LogItem, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, Key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []entry.LogItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	return decode(data)
}

func (s *sqliteStorage) SaveAll(ctx context.Context, items []entry.LogItem) error {
	data, err := encode(items)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		Key, data)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	return nil
}

func (s *sqliteStorage) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == MemoryDSN {
		return nil, errors.New("store: cannot watch an in-memory database")
	}
	return watchDir(ctx, s.basePath, func(name string) bool {
		return strings.HasPrefix(name, SQLiteFile)
	})
}

func (s *sqliteStorage) Describe() string {
	if s.basePath == MemoryDSN {
		return "sqlite " + MemoryDSN
	}
	return "sqlite " + filepath.Join(s.basePath, SQLiteFile)
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

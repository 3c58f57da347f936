package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bills/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot as one row of the snapshots table.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

func NewSQLiteStore(dbPath, key string) (*SQLiteStore, error) {
	if key == "" {
		key = DefaultSnapshotKey
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db, key: key}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save implements SnapshotStore
func (s *SQLiteStore) Save(ctx context.Context, bills []core.Bill) error {
	payload, err := EncodeBills(bills)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		s.key, string(payload))
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", s.key, err)
	}

	slog.DebugContext(ctx, "Snapshot saved to SQLite",
		"snapshot_key", s.key,
		"count", len(bills),
		"bytes", len(payload))

	return nil
}

// Load implements SnapshotStore
func (s *SQLiteStore) Load(ctx context.Context) ([]core.Bill, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE key = ?`, s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", s.key, err)
	}
	return DecodeBills([]byte(payload))
}

// Delete removes the snapshot so the next Load reports ErrNoSnapshot.
func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", s.key, err)
	}
	return nil
}

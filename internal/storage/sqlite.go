package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dcastano/finanzapp/internal/dbx"
	"github.com/dcastano/finanzapp/internal/logging"
	"github.com/dcastano/finanzapp/internal/shared"
	"github.com/dcastano/finanzapp/internal/storage/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists collections as JSON documents in a single
// collections(key, data) table.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// runMigrations applies the embedded goose migrations.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLiteStore opens (or creates) the store at dsn and brings the schema
// up to date.
func OpenSQLiteStore(ctx context.Context, dsn string, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, log: log.With("component", "storage")}, nil
}

func (s *SQLiteStore) Put(ctx context.Context, collection string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		s.log.Error(ctx, "serialization failed", "collection", collection, "error", err)
		return fmt.Errorf("%w: marshaling %s: %w", shared.ErrStorage, collection, err)
	}

	query := `INSERT INTO collections (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`
	if _, err := s.db.ExecContext(ctx, query, collection, string(b)); err != nil {
		s.log.Error(ctx, "write failed", "collection", collection, "error", err)
		return fmt.Errorf("%w: writing %s: %w", shared.ErrStorage, collection, err)
	}
	return nil
}

// PutBatch writes several collections in one transaction, so a partially
// applied seed can never be observed.
func (s *SQLiteStore) PutBatch(ctx context.Context, entries []BatchEntry) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO collections (key, data) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET data = excluded.data`
		for _, entry := range entries {
			b, err := json.Marshal(entry.Value)
			if err != nil {
				return fmt.Errorf("%w: marshaling %s: %w", shared.ErrStorage, entry.Collection, err)
			}
			if _, err := tx.ExecContext(ctx, query, entry.Collection, string(b)); err != nil {
				s.log.Error(ctx, "batch write failed", "collection", entry.Collection, "error", err)
				return fmt.Errorf("%w: writing %s: %w", shared.ErrStorage, entry.Collection, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Get(ctx context.Context, collection string, dest any) error {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = ?`, collection)

	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shared.ErrNotFound
		}
		s.log.Error(ctx, "read failed", "collection", collection, "error", err)
		return fmt.Errorf("%w: reading %s: %w", shared.ErrStorage, collection, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		s.log.Error(ctx, "deserialization failed", "collection", collection, "error", err)
		return fmt.Errorf("%w: unmarshaling %s: %w", shared.ErrStorage, collection, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, collection string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, collection); err != nil {
		s.log.Error(ctx, "delete failed", "collection", collection, "error", err)
		return fmt.Errorf("%w: removing %s: %w", shared.ErrStorage, collection, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Package sqlite stores durable slots in an SQLite database using the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"eventbooking/internal/domain"
)

const createSlotsTable = `
	CREATE TABLE IF NOT EXISTS durable_slots (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
`

// Open opens (or creates) the database at path and ensures the slot table exists.
// The pool is limited to one connection since SQLite serializes writers.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, createSlotsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create durable_slots: %w", err)
	}
	return db, nil
}

type slotRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewSlotRepository returns a DurableSlot stored in the durable_slots table.
func NewSlotRepository(db *sql.DB) domain.DurableSlot {
	return &slotRepository{DB: db, now: time.Now}
}

func (r *slotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM durable_slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("get slot %q: %w", key, err)
	}
	return value, nil
}

func (r *slotRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO durable_slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, key, value, r.now().UTC()); err != nil {
		return fmt.Errorf("set slot %q: %w", key, err)
	}
	return nil
}

func (r *slotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM durable_slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"eventbooking/internal/domain"
)

// undefinedTable is the Postgres SQLSTATE for a missing relation.
const undefinedTable = "42P01"

const createSlotsTable = `
	CREATE TABLE IF NOT EXISTS durable_slots (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

// Open connects to Postgres with the lib/pq driver and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the durable_slots table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createSlotsTable); err != nil {
		return fmt.Errorf("create durable_slots: %w", err)
	}
	return nil
}

type slotRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewSlotRepository returns a DurableSlot stored in the durable_slots table.
func NewSlotRepository(db *sql.DB) domain.DurableSlot {
	return &slotRepository{
		DB:  db,
		now: time.Now,
	}
}

func (r *slotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM durable_slots
		WHERE key = $1
	`
	var value []byte
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, wrapSlotErr(err)
	}
	return value, nil
}

func (r *slotRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO durable_slots (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, key, value, r.now().UTC()); err != nil {
		return wrapSlotErr(err)
	}
	return nil
}

func (r *slotRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM durable_slots WHERE key = $1`
	if _, err := r.DB.ExecContext(ctx, query, key); err != nil {
		return wrapSlotErr(err)
	}
	return nil
}

func wrapSlotErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("durable_slots table missing (run EnsureSchema): %w", err)
	}
	return err
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) domain.DurableSlot {
	t.Helper()
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSlotRepository(db)
}

func TestSlotRepository(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t, filepath.Join(t.TempDir(), "session.db"))

	_, err := repo.Get(ctx, "user")
	require.ErrorIs(t, err, domain.ErrSlotEmpty)

	require.NoError(t, repo.Set(ctx, "user", []byte(`{"id":"1","name":"a"}`)))
	got, err := repo.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"a"}`, string(got))

	require.NoError(t, repo.Set(ctx, "user", []byte(`{"id":"2"}`)))
	got, err = repo.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2"}`, string(got))

	require.NoError(t, repo.Delete(ctx, "user"))
	require.NoError(t, repo.Delete(ctx, "user"))
	_, err = repo.Get(ctx, "user")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestSlotRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSlotRepository(db).Set(ctx, "user", []byte(`{"id":"3"}`)))
	require.NoError(t, db.Close())

	reopened := openTestDB(t, path)
	got, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"3"}`, string(got))
}

func TestSlotRepository_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t, filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Delete(ctx, "a"))

	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}

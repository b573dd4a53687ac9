package services

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger discards output so tests don't assert on log lines.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// counterIDs returns an IDGenerator yielding "new-1", "new-2", ...
func counterIDs() domain.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func newSeededCatalog(t *testing.T) domain.CatalogStore {
	t.Helper()
	store := NewCatalogStore(testLogger, counterIDs())
	store.Initialize()
	return store
}

func ids(events []*domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestCatalogStore_Initialize(t *testing.T) {
	store := NewCatalogStore(testLogger, nil)
	assert.Empty(t, store.List())

	store.Initialize()
	events := store.List()
	require.Len(t, events, 6)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(events))
	assert.Equal(t, "Tech Conference 2025", events[0].Title)

	// Re-initializing resets any changes.
	store.Delete("1")
	store.Initialize()
	assert.Len(t, store.List(), 6)
}

func TestCatalogStore_Create(t *testing.T) {
	tests := []struct {
		name      string
		fields    domain.EventFields
		wantImage string
	}{
		{
			name: "prepends with default image",
			fields: domain.EventFields{
				Title:    "X",
				Price:    10,
				Date:     "2025-09-01",
				Category: domain.CategoryMusic,
				Capacity: 20,
			},
			wantImage: domain.DefaultEventImage,
		},
		{
			name: "keeps supplied image",
			fields: domain.EventFields{
				Title:    "Y",
				Category: domain.CategoryFood,
				Image:    "https://example.com/y.png",
				Capacity: 5,
			},
			wantImage: "https://example.com/y.png",
		},
		{
			name: "stores invalid input verbatim",
			fields: domain.EventFields{
				Title:    "",
				Price:    -5,
				Capacity: 0,
			},
			wantImage: domain.DefaultEventImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededCatalog(t)
			before := store.List()

			created := store.Create(tt.fields)

			after := store.List()
			require.Len(t, after, len(before)+1)
			assert.Equal(t, created.ID, after[0].ID)
			assert.Equal(t, tt.fields.Title, after[0].Title)
			assert.Equal(t, tt.fields.Price, after[0].Price)
			assert.Equal(t, tt.fields.Capacity, after[0].Capacity)
			assert.Equal(t, tt.wantImage, after[0].Image)
			assert.NotContains(t, ids(before), created.ID)
			assert.Equal(t, ids(before), ids(after[1:]))
		})
	}
}

func TestCatalogStore_CreateNewestFirst(t *testing.T) {
	store := newSeededCatalog(t)
	a := store.Create(domain.EventFields{Title: "A"})
	b := store.Create(domain.EventFields{Title: "B"})

	events := store.List()
	assert.Equal(t, []string{b.ID, a.ID, "1", "2", "3", "4", "5", "6"}, ids(events))
}

func TestCatalogStore_CreateUUIDsAreUnique(t *testing.T) {
	store := NewCatalogStore(testLogger, nil)
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		e := store.Create(domain.EventFields{Title: "same tick"})
		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate id %s", e.ID)
		seen[e.ID] = struct{}{}
	}
	assert.Len(t, store.List(), 200)
}

func TestCatalogStore_Delete(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantIDs []string
	}{
		{"existing id", "3", []string{"1", "2", "4", "5", "6"}},
		{"first", "1", []string{"2", "3", "4", "5", "6"}},
		{"last", "6", []string{"1", "2", "3", "4", "5"}},
		{"missing id leaves collection unchanged", "nope", []string{"1", "2", "3", "4", "5", "6"}},
		{"empty id", "", []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededCatalog(t)
			before := store.List()

			store.Delete(tt.id)

			after := store.List()
			assert.Equal(t, tt.wantIDs, ids(after))
			if len(after) == len(before) {
				assert.Equal(t, before, after)
			}
		})
	}
}

func TestCatalogStore_DeleteTwice(t *testing.T) {
	store := newSeededCatalog(t)
	store.Delete("2")
	snapshot := store.List()
	store.Delete("2")
	assert.Equal(t, snapshot, store.List())
}

func TestCatalogStore_FindByID(t *testing.T) {
	store := newSeededCatalog(t)

	e, err := store.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Summer Music Festival", e.Title)
	assert.Equal(t, domain.CategoryMusic, e.Category)

	_, err = store.FindByID("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogStore_ReadsDoNotAlias(t *testing.T) {
	store := newSeededCatalog(t)

	e, err := store.FindByID("1")
	require.NoError(t, err)
	e.Title = "mutated"

	listed := store.List()
	listed[0].Price = -1

	again, err := store.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Conference 2025", again.Title)
	assert.Equal(t, float64(299), again.Price)
}

func TestCatalogStore_SearchOverSnapshot(t *testing.T) {
	store := newSeededCatalog(t)

	got := domain.SearchEvents(store.List(), "tech", domain.CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Tech Conference 2025", got[0].Title)

	created := store.Create(domain.EventFields{Title: "Tech Meetup", Category: domain.CategoryTechnology})
	got = domain.SearchEvents(store.List(), "tech", domain.CategoryTechnology)
	assert.Equal(t, []string{created.ID, "1"}, ids(got))
}

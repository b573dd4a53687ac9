package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(events []*Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestSearchEvents(t *testing.T) {
	seed := SeedEvents()

	tests := []struct {
		name     string
		term     string
		category Category
		want     []string
	}{
		{
			name:     "tech across all categories",
			term:     "tech",
			category: CategoryAll,
			want:     []string{"Tech Conference 2025"},
		},
		{
			name:     "case insensitive",
			term:     "TECH",
			category: CategoryAll,
			want:     []string{"Tech Conference 2025"},
		},
		{
			name:     "empty term matches everything",
			term:     "",
			category: CategoryAll,
			want: []string{
				"Tech Conference 2025", "Summer Music Festival", "Design Workshop",
				"Food & Wine Expo", "Startup Pitch Night", "Yoga & Wellness Retreat",
			},
		},
		{
			name:     "category exact with empty term",
			term:     "",
			category: CategoryMusic,
			want:     []string{"Summer Music Festival"},
		},
		{
			name:     "category excludes matching text elsewhere",
			term:     "tech",
			category: CategoryMusic,
			want:     []string{},
		},
		{
			name:     "matches short description only",
			term:     "under the stars",
			category: CategoryAll,
			want:     []string{"Summer Music Festival"},
		},
		{
			name:     "full description is not searched",
			term:     "Figma",
			category: CategoryAll,
			want:     []string{},
		},
		{
			name:     "several matches keep input order",
			term:     "&",
			category: CategoryAll,
			want:     []string{"Food & Wine Expo", "Yoga & Wellness Retreat"},
		},
		{
			name:     "category selector is case sensitive",
			term:     "",
			category: Category("music"),
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchEvents(seed, tt.term, tt.category)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSearchEvents_Property(t *testing.T) {
	seed := SeedEvents()
	terms := []string{"", "a", "the", "tech", "wine", "zzz", "Night", "retreat"}
	categories := append([]Category{CategoryAll}, Categories()...)

	for _, term := range terms {
		for _, cat := range categories {
			got := SearchEvents(seed, term, cat)
			included := make(map[string]bool, len(got))
			for _, e := range got {
				included[e.ID] = true
			}
			for _, e := range seed {
				text := MatchSearch(term)(e)
				inCat := cat == CategoryAll || e.Category == cat
				assert.Equal(t, text && inCat, included[e.ID], "term=%q category=%q id=%s", term, cat, e.ID)
			}
		}
	}
}

func TestFilterEvents(t *testing.T) {
	seed := SeedEvents()

	t.Run("no predicates returns all in order", func(t *testing.T) {
		got := FilterEvents(seed)
		require.Len(t, got, len(seed))
		for i := range seed {
			assert.Same(t, seed[i], got[i])
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		before := titles(seed)
		_ = FilterEvents(seed, MatchCategory(CategoryFood))
		assert.Equal(t, before, titles(seed))
	})

	t.Run("custom predicate composes", func(t *testing.T) {
		cheap := func(e *Event) bool { return e.Price < 150 }
		got := FilterEvents(seed, MatchSearch(""), cheap)
		assert.Equal(t, []string{"Summer Music Festival", "Design Workshop", "Startup Pitch Night"}, titles(got))
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, FilterEvents(nil, MatchSearch("x")))
	})
}

func TestMatchTitleOrCategory(t *testing.T) {
	seed := SeedEvents()
	tests := []struct {
		term string
		want []string
	}{
		{"well", []string{"Yoga & Wellness Retreat"}},
		{"business", []string{"Startup Pitch Night"}},
		{"FOOD", []string{"Food & Wine Expo"}},
		{"stars", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(FilterEvents(seed, MatchTitleOrCategory(tt.term))))
		})
	}
}

func TestPageEvents(t *testing.T) {
	seed := SeedEvents()
	tests := []struct {
		name      string
		p         PaginationParams
		want      []string
		wantPage  int
		wantSize  int
		wantPages int
	}{
		{"first page", PaginationParams{Page: 1, PageSize: 4}, []string{"1", "2", "3", "4"}, 1, 4, 2},
		{"partial last page", PaginationParams{Page: 2, PageSize: 4}, []string{"5", "6"}, 2, 4, 2},
		{"past the end", PaginationParams{Page: 3, PageSize: 4}, []string{}, 3, 4, 2},
		{"zero page size uses default", PaginationParams{Page: 1, PageSize: 0}, []string{"1", "2", "3", "4", "5", "6"}, 1, DefaultEventPageSize, 1},
		{"page below one treated as first", PaginationParams{Page: 0, PageSize: 2}, []string{"1", "2"}, 1, 2, 3},
		{"page size capped", PaginationParams{Page: 1, PageSize: 500}, []string{"1", "2", "3", "4", "5", "6"}, 1, MaxEventPageSize, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageEvents(seed, tt.p)
			ids := make([]string, len(got.Events))
			for i, e := range got.Events {
				ids[i] = e.ID
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.PageSize)
			assert.Equal(t, len(seed), got.Total)
			assert.Equal(t, tt.wantPages, got.TotalPages)
		})
	}
}

func TestPageEvents_Empty(t *testing.T) {
	got := PageEvents(nil, PaginationParams{})
	assert.Empty(t, got.Events)
	assert.NotNil(t, got.Events)
	assert.Equal(t, 0, got.TotalPages)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"", CategoryAll, false},
		{"All", CategoryAll, false},
		{"Wellness", CategoryWellness, false},
		{"wellness", "", true},
		{"Sports", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.False(t, CategoryAll.Valid())
}

func TestNewEvent_DefaultImage(t *testing.T) {
	e := NewEvent("x", EventFields{Title: "T"})
	assert.Equal(t, DefaultEventImage, e.Image)
	assert.True(t, e.IsFree())

	e = NewEvent("y", EventFields{Image: "https://img", Price: 1})
	assert.Equal(t, "https://img", e.Image)
	assert.False(t, e.IsFree())
}

func TestIdentityConstructors(t *testing.T) {
	assert.Equal(t, &Identity{ID: "1", Name: "a", Email: "a@b.com"}, NewCredentialsIdentity("a@b.com"))
	assert.Equal(t, "first", NewCredentialsIdentity("first@second@host").Name)
	assert.Equal(t, &Identity{ID: "3", Name: "Ann", Email: "ann@b.com"}, NewRegisteredIdentity("Ann", "ann@b.com"))

	p := NewProviderIdentity()
	assert.Equal(t, "2", p.ID)
	assert.NotEmpty(t, p.Image)

	assert.False(t, SessionState{}.Authenticated())
	assert.True(t, SessionState{Identity: p}.Authenticated())
}

package services

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
)

type catalogStore struct {
	mu     sync.RWMutex
	events []*domain.Event
	newID  domain.IDGenerator
	logger *slog.Logger
}

// NewCatalogStore creates an empty CatalogStore. Call Initialize to load the seed events.
// A nil newID uses random UUIDs.
func NewCatalogStore(logger *slog.Logger, newID domain.IDGenerator) domain.CatalogStore {
	if newID == nil {
		newID = uuid.NewString
	}
	return &catalogStore{
		events: []*domain.Event{},
		newID:  newID,
		logger: logger,
	}
}

func (s *catalogStore) Initialize() {
	seed := domain.SeedEvents()
	s.mu.Lock()
	s.events = seed
	s.mu.Unlock()
	s.logger.Debug("catalog initialized", "events", len(seed))
}

func (s *catalogStore) Create(fields domain.EventFields) *domain.Event {
	event := domain.NewEvent(s.newID(), fields)

	s.mu.Lock()
	events := make([]*domain.Event, 0, len(s.events)+1)
	events = append(events, event)
	s.events = append(events, s.events...)
	s.mu.Unlock()

	s.logger.Debug("event created", "id", event.ID, "title", event.Title)
	cp := *event
	return &cp
}

func (s *catalogStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		events := make([]*domain.Event, 0, len(s.events)-1)
		events = append(events, s.events[:i]...)
		s.events = append(events, s.events[i+1:]...)
		s.logger.Debug("event deleted", "id", id)
		return
	}
}

func (s *catalogStore) FindByID(id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogStore) List() []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Event, len(s.events))
	for i, e := range s.events {
		cp := *e
		out[i] = &cp
	}
	return out
}

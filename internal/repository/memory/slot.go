// Package memory provides an in-process DurableSlot. Contents do not survive a
// process restart; it serves tests and throwaway runs.
package memory

import (
	"bytes"
	"context"
	"sync"

	"eventbooking/internal/domain"
)

// Slot is a map-backed DurableSlot.
type Slot struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewSlot returns an empty Slot.
func NewSlot() *Slot {
	return &Slot{data: make(map[string][]byte)}
}

func (s *Slot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return bytes.Clone(v), nil
}

func (s *Slot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = bytes.Clone(value)
	return nil
}

func (s *Slot) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

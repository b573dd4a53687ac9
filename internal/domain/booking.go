package domain

import (
	"context"
	"time"
)

// Booking is the confirmation returned when the signed-in user books an event.
// swagger:model Booking
type Booking struct {
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	Email      string    `json:"email"`
	BookedAt   time.Time `json:"booked_at"`
}

// BookingService books events for the current session.
type BookingService interface {
	Book(ctx context.Context, eventID string) (*Booking, error)
}

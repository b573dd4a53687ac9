package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventbooking/internal/domain"
)

type bookingService struct {
	catalog      domain.CatalogStore
	session      domain.SessionStore
	emailService domain.EmailService
	now          func() time.Time
}

// NewBookingService creates a BookingService. emailService may be nil, in which case no confirmation is sent.
func NewBookingService(catalog domain.CatalogStore, session domain.SessionStore, emailService domain.EmailService) domain.BookingService {
	return &bookingService{
		catalog:      catalog,
		session:      session,
		emailService: emailService,
		now:          time.Now,
	}
}

func (s *bookingService) Book(ctx context.Context, eventID string) (*domain.Booking, error) {
	state := s.session.Current()
	if !state.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	event, err := s.catalog.FindByID(eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if s.emailService != nil {
		data := &domain.BookingConfirmationEmailData{
			Email:         state.Identity.Email,
			Name:          state.Identity.Name,
			EventTitle:    event.Title,
			EventDate:     event.Date,
			EventLocation: event.Location,
			Price:         event.Price,
		}
		if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
			return nil, fmt.Errorf("send booking confirmation: %w", err)
		}
	}

	return &domain.Booking{
		EventID:    event.ID,
		EventTitle: event.Title,
		Email:      state.Identity.Email,
		BookedAt:   s.now().UTC(),
	}, nil
}

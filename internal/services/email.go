package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"eventbooking/internal/domain"
)

// ErrNoRecipient is returned when an email has no recipient address.
var ErrNoRecipient = errors.New("email recipient is required")

const (
	welcomeTemplate             = "welcome"
	bookingConfirmationTemplate = "booking_confirmation"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that renders storefront templates and hands them to mailer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return errors.New("welcome message data is nil")
	}
	return s.deliver(ctx, welcomeTemplate, data.Email, data, slog.String("name", data.Name))
}

// SendBookingConfirmation mails the attendee the event they booked, with its date, location and price.
func (s *emailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if data == nil {
		return errors.New("booking confirmation data is nil")
	}
	return s.deliver(ctx, bookingConfirmationTemplate, data.Email, data,
		slog.String("event_title", data.EventTitle),
		slog.String("event_date", data.EventDate),
		slog.String("event_location", data.EventLocation),
		slog.Float64("price", data.Price),
	)
}

func (s *emailService) deliver(ctx context.Context, template, to string, data any, attrs ...slog.Attr) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("%s: %w", template, ErrNoRecipient)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", template, err)
	}
	attrs = append(attrs, slog.String("template", template), slog.String("to", to))
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "email not sent", append(attrs, slog.Any("err", err))...)
		return fmt.Errorf("send %s email: %w", template, err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "email sent", attrs...)
	return nil
}

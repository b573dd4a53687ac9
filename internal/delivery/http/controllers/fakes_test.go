package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// decodeEnvelope decodes the response envelope and unmarshals data into out when out is non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, out any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if out != nil {
		require.Nil(t, envelope.Error, "success response must have error nil")
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(dataBytes, out))
	}
	return envelope
}

// fakeCatalog implements domain.CatalogStore over a plain slice.
type fakeCatalog struct {
	events      []*domain.Event
	lastCreate  *domain.EventFields
	lastDeleted string
	findErr     error
}

func (f *fakeCatalog) Initialize() {}

func (f *fakeCatalog) Create(fields domain.EventFields) *domain.Event {
	f.lastCreate = &fields
	e := domain.NewEvent("ev-created", fields)
	f.events = append([]*domain.Event{e}, f.events...)
	return e
}

func (f *fakeCatalog) Delete(id string) { f.lastDeleted = id }

func (f *fakeCatalog) FindByID(id string) (*domain.Event, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) List() []*domain.Event { return f.events }

// fakePending is a Pending that is either already settled or never settles.
type fakePending struct {
	done chan struct{}
	err  error
}

func settledPending(err error) *fakePending {
	done := make(chan struct{})
	close(done)
	return &fakePending{done: done, err: err}
}

func stuckPending() *fakePending {
	return &fakePending{done: make(chan struct{})}
}

func (p *fakePending) Done() <-chan struct{} { return p.done }

func (p *fakePending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *fakePending) Err() error { return p.err }

// fakeSessionStore implements domain.SessionStore. Sign-in operations adopt settleAs
// and return pending.
type fakeSessionStore struct {
	identity   *domain.Identity
	settleAs   *domain.Identity
	pending    *fakePending
	signOutErr error

	lastEmail    string
	lastName     string
	lastPassword string
	signOuts     int
}

func (f *fakeSessionStore) Restore(context.Context) error { return nil }

func (f *fakeSessionStore) Current() domain.SessionState {
	return domain.SessionState{Identity: f.identity}
}

func (f *fakeSessionStore) begin() domain.Pending {
	if f.pending == nil {
		f.pending = settledPending(nil)
	}
	select {
	case <-f.pending.done:
		if f.settleAs != nil {
			f.identity = f.settleAs
		}
	default:
	}
	return f.pending
}

func (f *fakeSessionStore) SignInWithCredentials(_ context.Context, email, password string) domain.Pending {
	f.lastEmail, f.lastPassword = email, password
	return f.begin()
}

func (f *fakeSessionStore) SignInWithProvider(context.Context) domain.Pending {
	return f.begin()
}

func (f *fakeSessionStore) Register(_ context.Context, name, email, password string) domain.Pending {
	f.lastName, f.lastEmail, f.lastPassword = name, email, password
	return f.begin()
}

func (f *fakeSessionStore) SignOut(context.Context) error {
	f.signOuts++
	f.identity = nil
	return f.signOutErr
}

func (f *fakeSessionStore) Close() {}

// fakeIssuer implements domain.TokenIssuer.
type fakeIssuer struct {
	err        error
	lastID     string
	lastEmail  string
	lastExpiry time.Duration
}

func (f *fakeIssuer) Issue(identityID, email string, expiry time.Duration) (string, error) {
	f.lastID, f.lastEmail, f.lastExpiry = identityID, email, expiry
	if f.err != nil {
		return "", f.err
	}
	return "token-" + identityID, nil
}

// fakeEmailService implements domain.EmailService.
type fakeEmailService struct {
	err      error
	welcomed []*domain.WelcomeMessageEmailData
}

func (f *fakeEmailService) SendWelcomeMessage(_ context.Context, data *domain.WelcomeMessageEmailData) error {
	f.welcomed = append(f.welcomed, data)
	return f.err
}

func (f *fakeEmailService) SendBookingConfirmation(context.Context, *domain.BookingConfirmationEmailData) error {
	return f.err
}

// fakeBookingService implements domain.BookingService.
type fakeBookingService struct {
	booking *domain.Booking
	err     error
	lastID  string
}

func (f *fakeBookingService) Book(_ context.Context, eventID string) (*domain.Booking, error) {
	f.lastID = eventID
	return f.booking, f.err
}

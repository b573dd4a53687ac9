package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Sentinel errors for session operations.
var (
	ErrUnauthenticated = errors.New("not signed in")
)

// Fixed identities produced by the mocked sign-in flows.
const (
	CredentialsIdentityID = "1"
	ProviderIdentityID    = "2"
	RegisteredIdentityID  = "3"

	ProviderIdentityName  = "Google User"
	ProviderIdentityEmail = "google.test@gmail.com"
	ProviderIdentityImage = "https://api.dicebear.com/7.x/avataaars/svg?seed=Google"
)

// Identity is the signed-in user's profile.
// swagger:model Identity
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// NewCredentialsIdentity builds the identity for an email/password sign-in.
// The name is the part of the email before the first "@".
func NewCredentialsIdentity(email string) *Identity {
	name, _, _ := strings.Cut(email, "@")
	return &Identity{ID: CredentialsIdentityID, Name: name, Email: email}
}

// NewProviderIdentity builds the fixed identity for a social provider sign-in.
func NewProviderIdentity() *Identity {
	return &Identity{
		ID:    ProviderIdentityID,
		Name:  ProviderIdentityName,
		Email: ProviderIdentityEmail,
		Image: ProviderIdentityImage,
	}
}

// NewRegisteredIdentity builds the identity for a new registration.
func NewRegisteredIdentity(name, email string) *Identity {
	return &Identity{ID: RegisteredIdentityID, Name: name, Email: email}
}

// SessionState is a snapshot of the session. A nil Identity means signed out.
// swagger:model SessionState
type SessionState struct {
	Identity *Identity `json:"identity"`
	Loading  bool      `json:"loading"`
}

// Authenticated reports whether someone is signed in.
func (s SessionState) Authenticated() bool {
	return s.Identity != nil
}

// Pending is an issued asynchronous session operation.
// It completes exactly once and cannot be cancelled.
type Pending interface {
	// Done is closed when the operation has settled.
	Done() <-chan struct{}
	// Wait blocks until the operation settles or ctx ends. Ending ctx does not cancel the operation.
	Wait(ctx context.Context) error
	// Err returns the settle error. It is only meaningful after Done is closed.
	Err() error
}

// SessionStore owns the current identity and its durable copy.
type SessionStore interface {
	// Restore loads a previously persisted identity. It must run before consumers read state.
	Restore(ctx context.Context) error
	Current() SessionState
	SignInWithCredentials(ctx context.Context, email, password string) Pending
	SignInWithProvider(ctx context.Context) Pending
	Register(ctx context.Context, name, email, password string) Pending
	SignOut(ctx context.Context) error
	Close()
}

// TokenIssuer issues session tokens for the signed-in identity.
type TokenIssuer interface {
	Issue(identityID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the identity ID and email it was issued for.
type TokenVerifier interface {
	Verify(token string) (identityID, email string, err error)
}

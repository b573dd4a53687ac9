package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the signed-in identity. Used by RequireSession.
func SetIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity RequireSession admitted, if present.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*domain.Identity)
	return id, ok && id != nil
}

// RequireSession returns a wrapper that validates the Bearer token and checks it was issued
// for the identity currently held by the session store, matching both ID and email. A token
// issued before sign-out, or for a different identity, is rejected with 401.
func RequireSession(verifier domain.TokenVerifier, session domain.SessionStore, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			identityID, email, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			state := session.Current()
			if !state.Authenticated() || state.Identity.ID != identityID || state.Identity.Email != email {
				logger.DebugContext(r.Context(), "token does not match session", "token_subject", identityID, "token_email", email, "authenticated", state.Authenticated())
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "session ended")
				return
			}
			r = r.WithContext(SetIdentity(r.Context(), state.Identity))
			next(w, r)
		}
	}
}

package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) []string {
	email = strings.TrimSpace(email)
	if email == "" {
		return []string{"email is required"}
	}
	if !emailRegexp.MatchString(email) {
		return []string{"invalid email format"}
	}
	return nil
}

// LoginRequest is the request body for POST /session/login. The password is accepted but not checked.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	return validateEmail(l.Email)
}

// RegisterRequest is the request body for POST /session/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (s RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	return append(errs, validateEmail(s.Email)...)
}

// SessionTokenResponse is the data payload returned when a sign-in completes.
type SessionTokenResponse struct {
	Identity  *domain.Identity `json:"identity"`
	Token     string           `json:"token"`
	TokenType string           `json:"token_type"`
	ExpiresIn int64            `json:"expires_in"`
}

// SessionTokenSuccessResponse is the success response envelope for the sign-in endpoints.
type SessionTokenSuccessResponse struct {
	Data  SessionTokenResponse `json:"data"`
	Error *h.APIError          `json:"error"`
}

// SessionStateSuccessResponse is the success response envelope for GET /session (200).
type SessionStateSuccessResponse struct {
	Data  domain.SessionState `json:"data"`
	Error *h.APIError         `json:"error"`
}

type SessionController struct {
	Logger      *slog.Logger
	Session     domain.SessionStore
	Issuer      domain.TokenIssuer
	TokenExpiry time.Duration
	Email       domain.EmailService
}

// NewSessionController wires the session endpoints. emailSvc may be nil, in which case no welcome email is sent.
func NewSessionController(logger *slog.Logger, session domain.SessionStore, issuer domain.TokenIssuer, tokenExpiry time.Duration, emailSvc domain.EmailService) *SessionController {
	return &SessionController{
		Logger:      logger,
		Session:     session,
		Issuer:      issuer,
		TokenExpiry: tokenExpiry,
		Email:       emailSvc,
	}
}

// GetSession godoc
// @Summary Current session
// @Description Returns the signed-in identity (null when signed out) and whether a restore is still loading.
// @Tags session
// @Produce json
// @Success 200 {object} controllers.SessionStateSuccessResponse "data contains the session state"
// @Router /session [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Session.Current())
}

// Login godoc
// @Summary Sign in with email and password
// @Description Mocked sign-in: completes after the configured delay with an identity named after the email's local part. The password is not verified.
// @Tags session
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} controllers.SessionTokenSuccessResponse "data contains identity and token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/login [post]
func (c *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := c.Session.SignInWithCredentials(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if identity, ok := c.await(w, r, p); ok {
		c.writeToken(w, r, http.StatusOK, identity)
	}
}

// SignInWithProvider godoc
// @Summary Sign in with the social provider
// @Description Mocked provider sign-in: completes after the configured delay with the fixed provider identity.
// @Tags session
// @Produce json
// @Success 200 {object} controllers.SessionTokenSuccessResponse "data contains identity and token"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/provider [post]
func (c *SessionController) SignInWithProvider(w http.ResponseWriter, r *http.Request) {
	p := c.Session.SignInWithProvider(r.Context())
	if identity, ok := c.await(w, r, p); ok {
		c.writeToken(w, r, http.StatusOK, identity)
	}
}

// Register godoc
// @Summary Register a new account
// @Description Mocked registration: completes after the configured delay and signs the new identity in. A welcome email is sent best effort.
// @Tags session
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} controllers.SessionTokenSuccessResponse "data contains identity and token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/register [post]
func (c *SessionController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := c.Session.Register(r.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), req.Password)
	identity, ok := c.await(w, r, p)
	if !ok {
		return
	}
	if c.Email != nil {
		data := &domain.WelcomeMessageEmailData{Email: identity.Email, Name: identity.Name}
		if err := c.Email.SendWelcomeMessage(r.Context(), data); err != nil {
			c.Logger.WarnContext(r.Context(), "welcome email not sent", "email", identity.Email, "err", err)
		}
	}
	c.writeToken(w, r, http.StatusCreated, identity)
}

// Logout godoc
// @Summary Sign out
// @Description Clears the current identity and its durable copy. Outstanding tokens stop working.
// @Tags session
// @Success 204 "no content"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/logout [post]
func (c *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Session.SignOut(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteNoContent(w)
}

// await blocks until p settles and returns the identity it signed in. A persist failure is logged
// and tolerated because the in-memory session has already moved on. If the client goes away the
// operation keeps running and nothing is written.
func (c *SessionController) await(w http.ResponseWriter, r *http.Request, p domain.Pending) (*domain.Identity, bool) {
	err := p.Wait(r.Context())
	if ctxErr := r.Context().Err(); ctxErr != nil {
		c.Logger.InfoContext(r.Context(), "client left before sign-in settled", "path", r.URL.Path, "err", ctxErr)
		return nil, false
	}
	state := c.Session.Current()
	if err != nil {
		if !state.Authenticated() {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
			return nil, false
		}
		c.Logger.WarnContext(r.Context(), "session not persisted", "identity_id", state.Identity.ID, "err", err)
	}
	if !state.Authenticated() {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "signed out before sign-in completed")
		return nil, false
	}
	return state.Identity, true
}

func (c *SessionController) writeToken(w http.ResponseWriter, r *http.Request, status int, identity *domain.Identity) {
	token, err := c.Issuer.Issue(identity.ID, identity.Email, c.TokenExpiry)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, status, SessionTokenResponse{
		Identity:  identity,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(c.TokenExpiry.Seconds()),
	})
}

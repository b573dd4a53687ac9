package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventbooking/docs"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/delivery/http/middleware"
)

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status is ok"
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewRouter initializes the HTTP router with all application routes.
// requireSession guards the routes that need a signed-in identity.
func NewRouter(
	events *controllers.EventController,
	sessions *controllers.SessionController,
	bookings *controllers.BookingController,
	requireSession func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", Health)

	// Catalog
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", events.GetEvent)
	mux.HandleFunc("GET /categories", events.ListCategories)
	mux.HandleFunc("POST /events", requireSession(events.CreateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireSession(events.DeleteEvent))
	mux.HandleFunc("GET /manage/events", requireSession(events.ManageEvents))

	// Bookings
	mux.HandleFunc("POST /events/{eventID}/book", requireSession(bookings.BookEvent))

	// Session
	mux.HandleFunc("GET /session", sessions.GetSession)
	mux.HandleFunc("POST /session/login", sessions.Login)
	mux.HandleFunc("POST /session/provider", sessions.SignInWithProvider)
	mux.HandleFunc("POST /session/register", sessions.Register)
	mux.HandleFunc("POST /session/logout", sessions.Logout)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain CORS, request logging, panic recovery.
func NewHandler(mux http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.CORS(allowedOrigins, middleware.LoggingMiddleware(logger, middleware.Recover(logger, mux)))
}

package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// BookingSuccessResponse is the success response envelope for POST /events/{eventID}/book (201).
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// BookEvent godoc
// @Summary Book an event
// @Description Books the event for the signed-in identity and emails a confirmation. No seats are reserved and no payment is taken.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the booking"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/book [post]
func (c *BookingController) BookEvent(w http.ResponseWriter, r *http.Request) {
	booking, err := c.Service.Book(r.Context(), r.PathValue("eventID"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrUnauthenticated):
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	c.Logger.InfoContext(r.Context(), "event booked", "event_id", booking.EventID, "email", booking.Email)
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

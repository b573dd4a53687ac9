package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// eventDateLayout is the calendar date format events are created with.
const eventDateLayout = "2006-01-02"

// CreateEventRequest is the request body for POST /events. id is server-generated.
type CreateEventRequest struct {
	Title            string  `json:"title"`
	ShortDescription string  `json:"short_description"`
	FullDescription  string  `json:"full_description"`
	Price            float64 `json:"price"`
	Date             string  `json:"date"`
	Category         string  `json:"category"`
	Image            string  `json:"image"`
	Location         string  `json:"location"`
	Capacity         int     `json:"capacity"`
}

// Validate implements Validator. Category defaults to Technology when omitted.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	required := []struct{ field, value string }{
		{"title", c.Title},
		{"short_description", c.ShortDescription},
		{"full_description", c.FullDescription},
		{"date", c.Date},
		{"location", c.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.field+" is required")
		}
	}
	if c.Price <= 0 {
		errs = append(errs, "price must be greater than 0")
	}
	if c.Capacity <= 0 {
		errs = append(errs, "capacity must be greater than 0")
	}
	if c.Date != "" {
		if _, err := time.Parse(eventDateLayout, c.Date); err != nil {
			errs = append(errs, "date must be in YYYY-MM-DD format")
		}
	}
	if c.Category != "" && !domain.Category(c.Category).Valid() {
		errs = append(errs, "category must be one of Technology, Music, Education, Food, Business, Wellness")
	}
	return errs
}

// Fields converts the request into catalog input.
func (c CreateEventRequest) Fields() domain.EventFields {
	category := domain.Category(c.Category)
	if category == "" {
		category = domain.CategoryTechnology
	}
	return domain.EventFields{
		Title:            strings.TrimSpace(c.Title),
		ShortDescription: strings.TrimSpace(c.ShortDescription),
		FullDescription:  strings.TrimSpace(c.FullDescription),
		Price:            c.Price,
		Date:             c.Date,
		Category:         category,
		Image:            strings.TrimSpace(c.Image),
		Location:         strings.TrimSpace(c.Location),
		Capacity:         c.Capacity,
	}
}

// EventSuccessResponse is the success response envelope for a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsResponse is the data payload for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ManageEventsSuccessResponse is the success response envelope for GET /manage/events (200).
type ManageEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CategoriesSuccessResponse is the success response envelope for GET /categories (200).
type CategoriesSuccessResponse struct {
	Data  []domain.Category `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogStore
}

func NewEventController(logger *slog.Logger, catalog domain.CatalogStore) *EventController {
	return &EventController{
		Logger:  logger,
		Catalog: catalog,
	}
}

// ListEvents godoc
// @Summary Browse events
// @Description Lists events newest first. q matches title or short description (case-insensitive); category narrows to one category, "All" or empty means every category.
// @Tags events
// @Produce json
// @Param q query string false "Search term"
// @Param category query string false "Category selector" Enums(All, Technology, Music, Education, Food, Business, Wellness)
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains events and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, err := domain.ParseCategory(q.Get("category"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	matched := domain.SearchEvents(c.Catalog.List(), q.Get("q"), category)
	page := domain.PageEvents(matched, helpers.EventPageQuery(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events:     page.Events,
		Pagination: helpers.EventPageMeta(page),
	})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns one event.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Catalog.FindByID(r.PathValue("eventID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Adds an event to the front of the catalog. id is server-generated; an empty image uses the default picture.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := c.Catalog.Create(req.Fields())
	c.Logger.InfoContext(r.Context(), "event created", "event_id", event.ID, "title", event.Title)
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes an event. Deleting an unknown id succeeds.
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	c.Catalog.Delete(eventID)
	c.Logger.InfoContext(r.Context(), "event deleted", "event_id", eventID)
	helpers.WriteNoContent(w)
}

// ManageEvents godoc
// @Summary List events for management
// @Description Lists every event whose title or category contains q (case-insensitive).
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param q query string false "Title or category term"
// @Success 200 {object} controllers.ManageEventsSuccessResponse "data contains matching events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /manage/events [get]
func (c *EventController) ManageEvents(w http.ResponseWriter, r *http.Request) {
	events := domain.FilterEvents(c.Catalog.List(), domain.MatchTitleOrCategory(r.URL.Query().Get("q")))
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListCategories godoc
// @Summary List category selectors
// @Description Returns "All" followed by the six event categories.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.CategoriesSuccessResponse "data contains the selectors"
// @Router /categories [get]
func (c *EventController) ListCategories(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, append([]domain.Category{domain.CategoryAll}, domain.Categories()...))
}

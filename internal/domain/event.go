package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidCategory = errors.New("invalid category")
)

// DefaultEventImage is used when an event is created without an image URL.
const DefaultEventImage = "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800"

// Category is the fixed set of event categories.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryMusic      Category = "Music"
	CategoryEducation  Category = "Education"
	CategoryFood       Category = "Food"
	CategoryBusiness   Category = "Business"
	CategoryWellness   Category = "Wellness"

	// CategoryAll selects every category in a query. It is never stored on an Event.
	CategoryAll Category = "All"
)

// Categories returns the storable categories in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryMusic,
		CategoryEducation,
		CategoryFood,
		CategoryBusiness,
		CategoryWellness,
	}
}

// Valid reports whether c is one of the storable categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a query selector into a Category. Empty input means CategoryAll.
func ParseCategory(s string) (Category, error) {
	if s == "" || Category(s) == CategoryAll {
		return CategoryAll, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Event represents one bookable event in the catalog.
// swagger:model Event
type Event struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Price            float64  `json:"price"`
	Date             string   `json:"date"`
	Category         Category `json:"category"`
	Image            string   `json:"image"`
	Location         string   `json:"location"`
	Capacity         int      `json:"capacity"`
}

// IsFree reports whether the event has no ticket price.
func (e *Event) IsFree() bool {
	return e.Price == 0
}

// EventFields holds everything needed to create an Event except its ID.
type EventFields struct {
	Title            string
	ShortDescription string
	FullDescription  string
	Price            float64
	Date             string
	Category         Category
	Image            string
	Location         string
	Capacity         int
}

// NewEvent returns a new Event with the given ID and fields. An empty image is replaced by DefaultEventImage.
func NewEvent(id string, f EventFields) *Event {
	image := f.Image
	if image == "" {
		image = DefaultEventImage
	}
	return &Event{
		ID:               id,
		Title:            f.Title,
		ShortDescription: f.ShortDescription,
		FullDescription:  f.FullDescription,
		Price:            f.Price,
		Date:             f.Date,
		Category:         f.Category,
		Image:            image,
		Location:         f.Location,
		Capacity:         f.Capacity,
	}
}

// IDGenerator produces unique event IDs.
type IDGenerator func() string

// CatalogStore owns the ordered event collection. It is the only legal mutation path for events.
type CatalogStore interface {
	// Initialize replaces the collection with the seed events.
	Initialize()
	// Create assigns a new ID, prepends the event and returns a copy of it. Input is not validated.
	Create(fields EventFields) *Event
	// Delete removes the event with the given ID. A missing ID is a no-op.
	Delete(id string)
	// FindByID returns a copy of the event or ErrNotFound.
	FindByID(id string) (*Event, error)
	// List returns a newest-first snapshot of the collection.
	List() []*Event
}

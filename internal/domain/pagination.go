package domain

// Event listing page sizes.
const (
	DefaultEventPageSize = 20
	MaxEventPageSize     = 100
)

// PaginationParams selects one page of a list. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Clamp replaces a missing or non-positive page with 1 and a missing page size with
// DefaultEventPageSize, and caps the page size at MaxEventPageSize.
func (p PaginationParams) Clamp() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = DefaultEventPageSize
	case p.PageSize > MaxEventPageSize:
		p.PageSize = MaxEventPageSize
	}
	return p
}

// Offset returns the index of the first item on the page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// EventPage is one page cut from a filtered event list, with the counts of the whole list.
type EventPage struct {
	Events     []*Event
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// PageEvents clamps p and cuts that page out of events. A page past the end has no
// events but still reports the totals.
func PageEvents(events []*Event, p PaginationParams) EventPage {
	p = p.Clamp()
	page := EventPage{
		Events:     []*Event{},
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      len(events),
		TotalPages: (len(events) + p.PageSize - 1) / p.PageSize,
	}
	if start := p.Offset(); start < len(events) {
		page.Events = events[start:min(start+p.PageSize, len(events))]
	}
	return page
}

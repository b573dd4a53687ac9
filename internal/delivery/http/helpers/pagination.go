package helpers

import (
	"net/http"
	"strconv"

	"eventbooking/internal/domain"
)

// EventPageQuery reads page and page_size from the query string. Values that are not
// integers count as missing; domain.PaginationParams.Clamp supplies the defaults.
func EventPageQuery(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))
	return domain.PaginationParams{Page: page, PageSize: size}.Clamp()
}

// PaginationMeta describes the page returned by GET /events.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// EventPageMeta copies the counts of p into the response shape.
func EventPageMeta(p domain.EventPage) PaginationMeta {
	return PaginationMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

package domain

import "strings"

// EventPredicate reports whether an event belongs in a query result.
type EventPredicate func(e *Event) bool

// MatchSearch matches events whose title or short description contains term, ignoring case.
// An empty term matches every event.
func MatchSearch(term string) EventPredicate {
	needle := strings.ToLower(term)
	return func(e *Event) bool {
		return strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.ShortDescription), needle)
	}
}

// MatchCategory matches events in exactly the given category, or every event for CategoryAll.
func MatchCategory(sel Category) EventPredicate {
	return func(e *Event) bool {
		return sel == CategoryAll || e.Category == sel
	}
}

// MatchTitleOrCategory matches events whose title or category name contains term, ignoring case.
// Used by the listing management view.
func MatchTitleOrCategory(term string) EventPredicate {
	needle := strings.ToLower(term)
	return func(e *Event) bool {
		return strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(string(e.Category)), needle)
	}
}

// FilterEvents returns the events matching every predicate, preserving input order.
func FilterEvents(events []*Event, preds ...EventPredicate) []*Event {
	out := make([]*Event, 0, len(events))
next:
	for _, e := range events {
		for _, p := range preds {
			if !p(e) {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// SearchEvents applies the catalog search: a text match on title or short description
// combined with a category selector.
func SearchEvents(events []*Event, term string, category Category) []*Event {
	return FilterEvents(events, MatchSearch(term), MatchCategory(category))
}

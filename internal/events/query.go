package events

import (
	"strings"

	"localevents-backend/internal/models"
)

type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterFree   FilterMode = "free"
	FilterPaid   FilterMode = "paid"
	FilterNearby FilterMode = "nearby"
	FilterRated  FilterMode = "rated"
)

// Events within this many miles count as nearby.
const nearbyMiles = 25

type Criteria struct {
	SearchTerm string
	Filter     FilterMode
}

// Apply filters a collection by search term and filter mode, both
// ANDed. It preserves input order, never mutates the input, and never
// re-sorts; sorting is a separate operation.
func Apply(events []models.Event, c Criteria) []models.Event {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))

	matched := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !matchesSearch(&e, term) {
			continue
		}
		if !matchesFilter(&e, c.Filter) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// matchesSearch checks for a case-insensitive substring in the name,
// location or description. An absent description never matches.
func matchesSearch(e *models.Event, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.EventName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Location), term) {
		return true
	}
	return e.Description != "" && strings.Contains(strings.ToLower(e.Description), term)
}

func matchesFilter(e *models.Event, mode FilterMode) bool {
	switch mode {
	case FilterFree:
		return e.CostNumeric == nil || *e.CostNumeric == 0
	case FilterPaid:
		return e.CostNumeric != nil && *e.CostNumeric > 0
	case FilterNearby:
		return e.Distance != nil && *e.Distance <= nearbyMiles
	case FilterRated:
		return e.Rating != nil && *e.Rating >= 4
	default:
		return true
	}
}

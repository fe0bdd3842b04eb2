package events

import (
	"sort"
	"strings"

	"localevents-backend/internal/models"
)

type SortField string

const (
	SortByDate     SortField = "date"
	SortByDistance SortField = "distance"
	SortByCost     SortField = "cost"
	SortByRating   SortField = "rating"
	SortByName     SortField = "name"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Missing-value substitutes per sort field: events without a distance
// sort last ascending, events without a cost sort with the free ones,
// unrated events sort as zero.
const (
	missingDistance = 999
	missingCost     = 0
	missingRating   = 0
)

// Sort reorders the in-memory collection. No I/O. An unknown field
// leaves the order unchanged; ties keep their relative order.
func (r *Repository) Sort(field SortField, direction SortDirection) {
	less, ok := lessFunc(field)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	sort.SliceStable(r.events, func(i, j int) bool {
		if direction == SortDesc {
			return less(r.events[j], r.events[i])
		}
		return less(r.events[i], r.events[j])
	})
}

func lessFunc(field SortField) (func(a, b models.Event) bool, bool) {
	switch field {
	case SortByDate:
		return func(a, b models.Event) bool {
			return a.EventDate.Time.Before(b.EventDate.Time)
		}, true
	case SortByDistance:
		return func(a, b models.Event) bool {
			return orMissing(a.Distance, missingDistance) < orMissing(b.Distance, missingDistance)
		}, true
	case SortByCost:
		return func(a, b models.Event) bool {
			return orMissing(a.CostNumeric, missingCost) < orMissing(b.CostNumeric, missingCost)
		}, true
	case SortByRating:
		return func(a, b models.Event) bool {
			return orMissing(a.Rating, missingRating) < orMissing(b.Rating, missingRating)
		}, true
	case SortByName:
		return func(a, b models.Event) bool {
			return strings.ToLower(a.EventName) < strings.ToLower(b.EventName)
		}, true
	}
	return nil, false
}

func orMissing(v *float64, substitute float64) float64 {
	if v == nil {
		return substitute
	}
	return *v
}

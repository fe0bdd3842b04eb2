package events

import (
	"context"
	"sort"
	"sync"

	"localevents-backend/internal/geo"
	"localevents-backend/internal/models"
	"localevents-backend/internal/store"

	"github.com/google/uuid"
)

// Repository holds the last-known server-synchronized view of the
// events table: an ordered collection, a loading flag and an error
// slot. Storage failures never escape as errors; they land in the
// error slot or in the mutation Result.
//
// The mutex guards memory safety only. Overlapping operations on the
// same id are last-write-wins; callers wanting stronger consistency
// serialize their own calls.
type Repository struct {
	store store.EventStore
	home  geo.Point

	mu      sync.RWMutex
	events  []models.Event
	loading bool
	err     string
}

func NewRepository(st store.EventStore, home geo.Point) *Repository {
	return &Repository{store: st, home: home}
}

// Events returns a snapshot of the in-memory collection.
func (r *Repository) Events() []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]models.Event, len(r.events))
	copy(snapshot, r.events)
	return snapshot
}

// Loading reports whether at least one fetch is in flight.
func (r *Repository) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Err returns the error slot; empty after a successful fetch.
func (r *Repository) Err() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// enrich recomputes the derived distance from the home point. Distance
// is never trusted from storage.
func (r *Repository) enrich(e *models.Event) {
	if e.HasCoordinates() {
		d := r.home.DistanceFrom(*e.Latitude, *e.Longitude)
		e.Distance = &d
	} else {
		e.Distance = nil
	}
}

// Fetch replaces the collection with the store's active future events,
// enriched with distance. A storage failure is captured in the error
// slot and leaves the collection untouched.
func (r *Repository) Fetch(ctx context.Context) {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.loading = false
		r.mu.Unlock()
	}()

	fetched, err := r.store.SelectUpcoming(ctx, models.Today())
	if err != nil {
		r.setErr(err.Error())
		return
	}

	for i := range fetched {
		r.enrich(&fetched[i])
	}

	r.mu.Lock()
	r.events = fetched
	r.err = ""
	r.mu.Unlock()
}

// Create inserts the draft and, on success, adds the enriched record
// to the collection keeping ascending event-date order.
func (r *Repository) Create(ctx context.Context, draft models.CreateEventRequest) models.Result {
	created, err := r.store.Insert(ctx, draft)
	if err != nil {
		r.setErr(err.Error())
		return models.Err(err.Error())
	}

	r.enrich(created)

	r.mu.Lock()
	r.events = append(r.events, *created)
	sortByDate(r.events)
	r.mu.Unlock()

	return models.Ok(created)
}

// Update patches the record by id and, on success, replaces it in the
// collection and re-sorts by event date.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch models.UpdateEventRequest) models.Result {
	updated, err := r.store.UpdateByID(ctx, id, patch)
	if err != nil {
		r.setErr(err.Error())
		return models.Err(err.Error())
	}

	r.enrich(updated)

	r.mu.Lock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events[i] = *updated
			break
		}
	}
	sortByDate(r.events)
	r.mu.Unlock()

	return models.Ok(updated)
}

// SoftDelete flips is_active off and removes the record from the
// collection. On failure the collection is untouched.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) models.Result {
	inactive := false
	if _, err := r.store.UpdateByID(ctx, id, models.UpdateEventRequest{IsActive: &inactive}); err != nil {
		r.setErr(err.Error())
		return models.Err(err.Error())
	}

	r.mu.Lock()
	kept := r.events[:0]
	for _, e := range r.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.events = kept
	r.mu.Unlock()

	return models.Result{Success: true}
}

func (r *Repository) setErr(msg string) {
	r.mu.Lock()
	r.err = msg
	r.mu.Unlock()
}

func sortByDate(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate.Time.Before(events[j].EventDate.Time)
	})
}

package events

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"localevents-backend/internal/geo"
	"localevents-backend/internal/models"
	"localevents-backend/internal/store"

	"github.com/google/uuid"
)

var chepstow = geo.Point{Lat: 51.6419, Lng: -2.6773}

// fakeStore is an in-memory StorageError-capable stand-in for the
// events table.
type fakeStore struct {
	events    []models.Event
	selectErr error
	insertErr error
	updateErr error

	lastFrom  models.Date
	lastID    uuid.UUID
	lastPatch models.UpdateEventRequest
}

func (f *fakeStore) SelectUpcoming(ctx context.Context, from models.Date) ([]models.Event, error) {
	f.lastFrom = from
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	out := make([]models.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, draft models.CreateEventRequest) (*models.Event, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	event := models.Event{
		ID:          uuid.New(),
		EventName:   draft.EventName,
		EventDate:   draft.EventDate,
		EndDate:     draft.EndDate,
		Location:    draft.Location,
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
		Description: draft.Description,
		CostText:    draft.CostText,
		CostNumeric: draft.CostNumeric,
		Rating:      draft.Rating,
		URL:         draft.URL,
		IsActive:    true,
	}
	f.events = append(f.events, event)
	return &event, nil
}

func (f *fakeStore) UpdateByID(ctx context.Context, id uuid.UUID, patch models.UpdateEventRequest) (*models.Event, error) {
	f.lastID = id
	f.lastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.events {
		if f.events[i].ID != id {
			continue
		}
		applyPatch(&f.events[i], patch)
		updated := f.events[i]
		return &updated, nil
	}
	return nil, &store.StorageError{Op: "update", Err: fmt.Errorf("event %s not found", id)}
}

func applyPatch(e *models.Event, patch models.UpdateEventRequest) {
	if patch.EventName != nil {
		e.EventName = *patch.EventName
	}
	if patch.EventDate != nil {
		e.EventDate = *patch.EventDate
	}
	if patch.Latitude != nil {
		e.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		e.Longitude = patch.Longitude
	}
	if patch.CostNumeric != nil {
		e.CostNumeric = patch.CostNumeric
	}
	if patch.Rating != nil {
		e.Rating = patch.Rating
	}
	if patch.IsActive != nil {
		e.IsActive = *patch.IsActive
	}
}

func fptr(v float64) *float64 { return &v }

func futureDate(days int) models.Date {
	t := time.Now().AddDate(0, 0, days)
	return models.NewDate(t.Year(), t.Month(), t.Day())
}

func sampleEvents() []models.Event {
	return []models.Event{
		{
			ID:        uuid.New(),
			EventName: "Bristol Zoo Project Day",
			EventDate: futureDate(3),
			Location:  "Bristol",
			Latitude:  fptr(51.4545),
			Longitude: fptr(-2.5879),
			IsActive:  true,
		},
		{
			ID:        uuid.New(),
			EventName: "Village Fete",
			EventDate: futureDate(10),
			Location:  "Tintern",
			IsActive:  true,
		},
	}
}

func TestFetchEnrichesDistance(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)

	repo.Fetch(context.Background())

	if msg := repo.Err(); msg != "" {
		t.Fatalf("unexpected error slot: %q", msg)
	}
	if repo.Loading() {
		t.Error("loading flag still set after fetch")
	}

	today := models.Today()
	if !fake.lastFrom.Equal(today.Time) {
		t.Errorf("fetch queried from %s, want %s", fake.lastFrom, today)
	}

	got := repo.Events()
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Distance == nil {
		t.Fatal("event with coordinates has nil distance")
	}
	if math.Abs(*got[0].Distance-13.2) > 0.5 {
		t.Errorf("distance = %v, want ~13.2", *got[0].Distance)
	}
	if got[1].Distance != nil {
		t.Errorf("event without coordinates has distance %v, want nil", *got[1].Distance)
	}
}

func TestFetchFailureKeepsStaleCollection(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)

	repo.Fetch(context.Background())
	before := repo.Events()

	fake.selectErr = &store.StorageError{Op: "select", Err: fmt.Errorf("network down")}
	repo.Fetch(context.Background())

	if repo.Err() == "" {
		t.Error("error slot empty after failed fetch")
	}
	if repo.Loading() {
		t.Error("loading flag still set after failed fetch")
	}
	after := repo.Events()
	if len(after) != len(before) {
		t.Errorf("collection changed on failed fetch: %d -> %d", len(before), len(after))
	}

	// A later successful fetch clears the slot.
	fake.selectErr = nil
	repo.Fetch(context.Background())
	if msg := repo.Err(); msg != "" {
		t.Errorf("error slot not cleared: %q", msg)
	}
}

func TestCreateInsertsInDateOrder(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)
	repo.Fetch(context.Background())

	draft := models.CreateEventRequest{
		EventName: "Forest Walk",
		EventDate: futureDate(5),
		Location:  "Wye Valley",
		Latitude:  fptr(51.6419),
		Longitude: fptr(-2.6773),
	}

	result := repo.Create(context.Background(), draft)
	if !result.Success {
		t.Fatalf("create failed: %s", result.Error)
	}
	if result.Event.Distance == nil || *result.Event.Distance > 1e-9 {
		t.Errorf("distance from home to home = %v, want ~0", result.Event.Distance)
	}

	got := repo.Events()
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[1].EventName != "Forest Walk" {
		t.Errorf("new event at position 1 is %q, want Forest Walk", got[1].EventName)
	}
	for i := 1; i < len(got); i++ {
		if got[i].EventDate.Time.Before(got[i-1].EventDate.Time) {
			t.Errorf("collection not sorted ascending at index %d", i)
		}
	}
}

func TestCreateFailure(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)
	repo.Fetch(context.Background())

	fake.insertErr = &store.StorageError{Op: "insert", Err: fmt.Errorf("constraint violation")}
	result := repo.Create(context.Background(), models.CreateEventRequest{
		EventName: "Broken",
		EventDate: futureDate(1),
		Location:  "Nowhere",
	})

	if result.Success {
		t.Fatal("create reported success on storage failure")
	}
	if result.Error == "" {
		t.Error("create failure carries no message")
	}
	if len(repo.Events()) != 2 {
		t.Error("collection changed on failed create")
	}
}

func TestUpdateReplacesAndResorts(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)
	repo.Fetch(context.Background())

	first := repo.Events()[0]
	newDate := futureDate(20)
	result := repo.Update(context.Background(), first.ID, models.UpdateEventRequest{
		EventDate: &newDate,
	})
	if !result.Success {
		t.Fatalf("update failed: %s", result.Error)
	}

	got := repo.Events()
	if got[len(got)-1].ID != first.ID {
		t.Error("updated event not re-sorted to the end")
	}
	if got[len(got)-1].Distance == nil {
		t.Error("updated event lost its derived distance")
	}
}

func TestUpdateUnknownIDSurfacesStorageError(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)
	repo.Fetch(context.Background())

	result := repo.Update(context.Background(), uuid.New(), models.UpdateEventRequest{})
	if result.Success {
		t.Fatal("update of unknown id reported success")
	}
	if result.Error == "" {
		t.Error("update failure carries no message")
	}
}

func TestSoftDeleteRemovesOnlyThatID(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)
	repo.Fetch(context.Background())

	victim := repo.Events()[0]
	other := repo.Events()[1]

	result := repo.SoftDelete(context.Background(), victim.ID)
	if !result.Success {
		t.Fatalf("soft delete failed: %s", result.Error)
	}

	if fake.lastPatch.IsActive == nil || *fake.lastPatch.IsActive {
		t.Error("soft delete did not send is_active = false")
	}

	got := repo.Events()
	if len(got) != 1 {
		t.Fatalf("got %d events after delete, want 1", len(got))
	}
	if got[0].ID != other.ID {
		t.Error("wrong event removed")
	}
	if got[0].EventName != other.EventName {
		t.Error("surviving event was mutated")
	}
}

func TestSoftDeleteFailureLeavesCollection(t *testing.T) {
	fake := &fakeStore{events: sampleEvents()}
	repo := NewRepository(fake, chepstow)
	repo.Fetch(context.Background())

	fake.updateErr = &store.StorageError{Op: "update", Err: fmt.Errorf("auth failure")}
	result := repo.SoftDelete(context.Background(), repo.Events()[0].ID)

	if result.Success {
		t.Fatal("soft delete reported success on storage failure")
	}
	if len(repo.Events()) != 2 {
		t.Error("collection changed on failed soft delete")
	}
}

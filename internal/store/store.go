package store

import (
	"context"
	"fmt"

	"localevents-backend/internal/models"

	"github.com/google/uuid"
)

// EventStore is the capability the repository needs from the events
// table. Both implementations apply the same query-time boundary:
// SelectUpcoming returns only active rows dated on or after `from`,
// ordered ascending by event date. Soft delete is an UpdateByID with
// IsActive = false.
type EventStore interface {
	SelectUpcoming(ctx context.Context, from models.Date) ([]models.Event, error)
	Insert(ctx context.Context, draft models.CreateEventRequest) (*models.Event, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch models.UpdateEventRequest) (*models.Event, error)
}

// StorageError is the only error kind crossing the store boundary:
// network failures, auth failures, constraint violations and missing
// rows all arrive as one of these.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

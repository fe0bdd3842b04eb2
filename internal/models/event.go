package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is an enriched event record. Distance is derived from the
// coordinates at every fetch/insert/update and is never stored.
type Event struct {
	ID                    uuid.UUID `json:"id" db:"id"`
	EventName             string    `json:"event_name" db:"event_name"`
	EventDate             Date      `json:"event_date" db:"event_date"`
	EndDate               *Date     `json:"end_date" db:"end_date"`
	Location              string    `json:"location" db:"location"`
	Latitude              *float64  `json:"latitude" db:"latitude"`
	Longitude             *float64  `json:"longitude" db:"longitude"`
	Distance              *float64  `json:"distance"`
	Description           string    `json:"description" db:"description"`
	CostText              string    `json:"cost_text" db:"cost_text"`
	CostNumeric           *float64  `json:"cost_numeric" db:"cost_numeric"`
	Rating                *float64  `json:"rating" db:"rating"`
	URL                   string    `json:"url" db:"url"`
	ChildFriendlyFeatures string    `json:"child_friendly_features" db:"child_friendly_features"`
	CarerDisabilityInfo   string    `json:"carer_disability_info" db:"carer_disability_info"`
	Source                string    `json:"source" db:"source"`
	IsActive              bool      `json:"is_active" db:"is_active"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (e *Event) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

type CreateEventRequest struct {
	EventName             string   `json:"event_name" binding:"required,max=500"`
	EventDate             Date     `json:"event_date"`
	EndDate               *Date    `json:"end_date"`
	Location              string   `json:"location" binding:"required"`
	Latitude              *float64 `json:"latitude"`
	Longitude             *float64 `json:"longitude"`
	Description           string   `json:"description"`
	CostText              string   `json:"cost_text"`
	CostNumeric           *float64 `json:"cost_numeric"`
	Rating                *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	URL                   string   `json:"url" binding:"omitempty,url"`
	ChildFriendlyFeatures string   `json:"child_friendly_features"`
	CarerDisabilityInfo   string   `json:"carer_disability_info"`
	Source                string   `json:"source"`
}

// UpdateEventRequest is a partial patch: only non-nil fields are sent
// to the store. Soft delete is IsActive = false.
type UpdateEventRequest struct {
	EventName             *string  `json:"event_name,omitempty"`
	EventDate             *Date    `json:"event_date,omitempty"`
	EndDate               *Date    `json:"end_date,omitempty"`
	Location              *string  `json:"location,omitempty"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
	Description           *string  `json:"description,omitempty"`
	CostText              *string  `json:"cost_text,omitempty"`
	CostNumeric           *float64 `json:"cost_numeric,omitempty"`
	Rating                *float64 `json:"rating,omitempty"`
	URL                   *string  `json:"url,omitempty"`
	ChildFriendlyFeatures *string  `json:"child_friendly_features,omitempty"`
	CarerDisabilityInfo   *string  `json:"carer_disability_info,omitempty"`
	Source                *string  `json:"source,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

// Result is the outcome of a mutation. Storage failures are captured
// here rather than propagated as errors.
type Result struct {
	Success bool   `json:"success"`
	Event   *Event `json:"event,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok(event *Event) Result {
	return Result{Success: true, Event: event}
}

func Err(message string) Result {
	return Result{Error: message}
}

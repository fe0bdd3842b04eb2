package store

import (
	"context"
	"fmt"
	"strings"

	"localevents-backend/internal/database"
	"localevents-backend/internal/models"

	"github.com/google/uuid"
)

const eventColumns = `id, event_name, event_date, end_date, location, latitude, longitude,
	description, cost_text, cost_numeric, rating, url,
	child_friendly_features, carer_disability_info, source,
	is_active, created_at, updated_at`

// PGStore talks to the events table over a pgx connection pool.
type PGStore struct {
	db *database.Database
}

func NewPGStore(db *database.Database) *PGStore {
	return &PGStore{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.EventName, &e.EventDate, &e.EndDate, &e.Location,
		&e.Latitude, &e.Longitude, &e.Description, &e.CostText,
		&e.CostNumeric, &e.Rating, &e.URL, &e.ChildFriendlyFeatures,
		&e.CarerDisabilityInfo, &e.Source, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PGStore) SelectUpcoming(ctx context.Context, from models.Date) ([]models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE is_active = TRUE AND event_date >= $1
		ORDER BY event_date ASC
	`, eventColumns)

	rows, err := s.db.Query(ctx, query, from)
	if err != nil {
		return nil, storageErr("select", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, storageErr("select", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select", err)
	}

	return events, nil
}

func (s *PGStore) Insert(ctx context.Context, draft models.CreateEventRequest) (*models.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (event_name, event_date, end_date, location, latitude, longitude,
			description, cost_text, cost_numeric, rating, url,
			child_friendly_features, carer_disability_info, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING %s
	`, eventColumns)

	row := s.db.QueryRow(ctx, query,
		draft.EventName, draft.EventDate, draft.EndDate, draft.Location,
		draft.Latitude, draft.Longitude, draft.Description, draft.CostText,
		draft.CostNumeric, draft.Rating, draft.URL,
		draft.ChildFriendlyFeatures, draft.CarerDisabilityInfo, draft.Source,
	)

	event, err := scanEvent(row)
	if err != nil {
		return nil, storageErr("insert", err)
	}
	return event, nil
}

func (s *PGStore) UpdateByID(ctx context.Context, id uuid.UUID, patch models.UpdateEventRequest) (*models.Event, error) {
	// Only the supplied fields are written; updated_at always moves.
	sets := []string{"updated_at = NOW()"}
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.EventName != nil {
		set("event_name", *patch.EventName)
	}
	if patch.EventDate != nil {
		set("event_date", *patch.EventDate)
	}
	if patch.EndDate != nil {
		set("end_date", *patch.EndDate)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Latitude != nil {
		set("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		set("longitude", *patch.Longitude)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.CostText != nil {
		set("cost_text", *patch.CostText)
	}
	if patch.CostNumeric != nil {
		set("cost_numeric", *patch.CostNumeric)
	}
	if patch.Rating != nil {
		set("rating", *patch.Rating)
	}
	if patch.URL != nil {
		set("url", *patch.URL)
	}
	if patch.ChildFriendlyFeatures != nil {
		set("child_friendly_features", *patch.ChildFriendlyFeatures)
	}
	if patch.CarerDisabilityInfo != nil {
		set("carer_disability_info", *patch.CarerDisabilityInfo)
	}
	if patch.Source != nil {
		set("source", *patch.Source)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), eventColumns)

	event, err := scanEvent(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, storageErr("update", err)
	}
	return event, nil
}

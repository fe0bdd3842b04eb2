package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"localevents-backend/internal/models"

	"github.com/google/uuid"
)

// RESTStore talks to the events table through the Supabase PostgREST
// API instead of a direct Postgres connection.
type RESTStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTStore(baseURL, apiKey string) *RESTStore {
	return &RESTStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  http.DefaultClient,
	}
}

func (s *RESTStore) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// restError extracts PostgREST's {"message": ...} body.
func restError(resp *http.Response) error {
	var errResp map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&errResp)

	msg := "unknown error"
	if m, ok := errResp["message"].(string); ok {
		msg = m
	} else if m, ok := errResp["msg"].(string); ok {
		msg = m
	}

	return fmt.Errorf("status %d: %s", resp.StatusCode, msg)
}

func (s *RESTStore) SelectUpcoming(ctx context.Context, from models.Date) ([]models.Event, error) {
	url := fmt.Sprintf("%s/rest/v1/events?select=*&is_active=eq.true&event_date=gte.%s&order=event_date.asc",
		s.baseURL, from)

	req, err := s.newRequest(ctx, "GET", url, nil)
	if err != nil {
		return nil, storageErr("select", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, storageErr("select", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, storageErr("select", restError(resp))
	}

	var events []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, storageErr("select", err)
	}

	return events, nil
}

func (s *RESTStore) Insert(ctx context.Context, draft models.CreateEventRequest) (*models.Event, error) {
	// PostgREST inserts take an array of rows and return one back.
	reqBody, _ := json.Marshal([]models.CreateEventRequest{draft})

	url := fmt.Sprintf("%s/rest/v1/events", s.baseURL)
	req, err := s.newRequest(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, storageErr("insert", err)
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, storageErr("insert", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, storageErr("insert", restError(resp))
	}

	var created []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, storageErr("insert", err)
	}
	if len(created) == 0 {
		return nil, storageErr("insert", fmt.Errorf("no row returned"))
	}

	return &created[0], nil
}

func (s *RESTStore) UpdateByID(ctx context.Context, id uuid.UUID, patch models.UpdateEventRequest) (*models.Event, error) {
	reqBody, _ := json.Marshal(patch)

	url := fmt.Sprintf("%s/rest/v1/events?id=eq.%s", s.baseURL, id)
	req, err := s.newRequest(ctx, "PATCH", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, storageErr("update", err)
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, storageErr("update", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, storageErr("update", restError(resp))
	}

	var updated []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, storageErr("update", err)
	}
	if len(updated) == 0 {
		return nil, storageErr("update", fmt.Errorf("event %s not found", id))
	}

	return &updated[0], nil
}

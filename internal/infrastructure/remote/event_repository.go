package remote

import (
	"context"
	"net/http"

	"dayadmin/internal/domain/event"
)

type EventRepository struct {
	c *Client
}

func NewEventRepository(c *Client) *EventRepository {
	return &EventRepository{c: c}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	resp, err := r.c.doRequest(ctx, http.MethodGet, "/get-events", nil)
	if err != nil {
		return nil, err
	}

	var events []event.Event
	if err := r.c.parseResponse(resp, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, e event.Event) error {
	resp, err := r.c.doRequest(ctx, http.MethodPost, "/create-event", e)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

func (r *EventRepository) Update(ctx context.Context, e event.Event) error {
	resp, err := r.c.doRequest(ctx, http.MethodPatch, "/update-event", e)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	body := struct {
		ID string `json:"_id"`
	}{ID: id}

	resp, err := r.c.doRequest(ctx, http.MethodDelete, "/delete-event", body)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

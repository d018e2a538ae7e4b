package remote

import (
	"context"
	"net/http"

	"dayadmin/internal/domain/formcontrol"
)

type FormControlRepository struct {
	c *Client
}

func NewFormControlRepository(c *Client) *FormControlRepository {
	return &FormControlRepository{c: c}
}

// Get возвращает nil, если сервер ответил null
func (r *FormControlRepository) Get(ctx context.Context) (*formcontrol.Remote, error) {
	resp, err := r.c.doRequest(ctx, http.MethodGet, "/get-form-control", nil)
	if err != nil {
		return nil, err
	}

	var remote *formcontrol.Remote
	if err := r.c.parseResponse(resp, &remote); err != nil {
		return nil, err
	}
	return remote, nil
}

func (r *FormControlRepository) Create(ctx context.Context, p formcontrol.Payload) error {
	resp, err := r.c.doRequest(ctx, http.MethodPost, "/create-form-control", p)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

// Update - путь с опечаткой совпадает с маршрутом удаленного API
func (r *FormControlRepository) Update(ctx context.Context, p formcontrol.Payload) error {
	resp, err := r.c.doRequest(ctx, http.MethodPatch, "/update-from-control", p)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

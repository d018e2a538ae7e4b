package remote

import (
	"context"
	"net/http"

	"dayadmin/internal/domain/template"
)

type TemplateRepository struct {
	c *Client
}

func NewTemplateRepository(c *Client) *TemplateRepository {
	return &TemplateRepository{c: c}
}

func (r *TemplateRepository) List(ctx context.Context) ([]template.Template, error) {
	resp, err := r.c.doRequest(ctx, http.MethodGet, "/get-template", nil)
	if err != nil {
		return nil, err
	}

	var templates []template.Template
	if err := r.c.parseResponse(resp, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t template.Template) error {
	resp, err := r.c.doRequest(ctx, http.MethodPost, "/add-template", t)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

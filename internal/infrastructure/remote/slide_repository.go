package remote

import (
	"context"
	"net/http"

	"dayadmin/internal/domain/slide"
)

type SlideRepository struct {
	c *Client
}

func NewSlideRepository(c *Client) *SlideRepository {
	return &SlideRepository{c: c}
}

func (r *SlideRepository) List(ctx context.Context) ([]slide.Slide, error) {
	resp, err := r.c.doRequest(ctx, http.MethodGet, "/get-slide", nil)
	if err != nil {
		return nil, err
	}

	var slides []slide.Slide
	if err := r.c.parseResponse(resp, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *SlideRepository) Create(ctx context.Context, s slide.Slide) error {
	resp, err := r.c.doRequest(ctx, http.MethodPost, "/add-slide", s)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

func (r *SlideRepository) Update(ctx context.Context, s slide.Slide) error {
	resp, err := r.c.doRequest(ctx, http.MethodPatch, "/update-slider", s)
	if err != nil {
		return err
	}
	return r.c.parseResponse(resp, nil)
}

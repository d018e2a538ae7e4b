package template

import "context"

type Repository interface {
	List(ctx context.Context) ([]Template, error)
	Create(ctx context.Context, t Template) error
}

package slide

import "context"

type Repository interface {
	List(ctx context.Context) ([]Slide, error)
	Create(ctx context.Context, s Slide) error
	Update(ctx context.Context, s Slide) error
}

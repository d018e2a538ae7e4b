package event

import "context"

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}

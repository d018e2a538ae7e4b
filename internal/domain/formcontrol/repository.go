package formcontrol

import (
	"context"

	"dayadmin/internal/domain/template"
)

// Repository - одиночная запись формы. Get возвращает nil, если запись еще не создана.
type Repository interface {
	Get(ctx context.Context) (*Remote, error)
	Create(ctx context.Context, p Payload) error
	Update(ctx context.Context, p Payload) error
}

// OptionSource - источник вариантов переключателя
type OptionSource interface {
	List(ctx context.Context) ([]template.Template, error)
}

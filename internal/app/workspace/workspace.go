package workspace

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"dayadmin/internal/config"
	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/event"
	"dayadmin/internal/domain/formcontrol"
	"dayadmin/internal/domain/slide"
	"dayadmin/internal/domain/template"
	"dayadmin/internal/infrastructure/remote"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Screen - экран со своим независимым состоянием
type Screen string

const (
	ScreenForm   Screen = "form-control"
	ScreenSlides Screen = "carousel"
	ScreenEvents Screen = "events"
)

// Editor - общая часть редакторов экранов
type Editor interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Snapshot() ([]byte, error)
	RestoreSnapshot(data []byte) error
}

// Workspace - набор редакторов одного оператора. Экраны не делят состояние.
type Workspace struct {
	Templates *template.Service
	Form      *formcontrol.Editor
	Slides    *slide.Editor
	Events    *event.Editor
}

// New собирает редакторы всех экранов поверх одного клиента API
func New(cfg config.Remote, client *remote.Client, log *slog.Logger) (*Workspace, error) {
	slidePolicy, err := batch.ParsePolicy(cfg.SlideBatch)
	if err != nil {
		return nil, fmt.Errorf("slide batch policy: %w", err)
	}
	eventPolicy, err := batch.ParsePolicy(cfg.EventBatch)
	if err != nil {
		return nil, fmt.Errorf("event batch policy: %w", err)
	}

	urls := client.URLs()
	templates := remote.NewTemplateRepository(client)
	local := remote.NewLocalUploader(client)

	return &Workspace{
		Templates: template.NewService(templates, remote.NewTemplateUploader(client), urls, cfg.PageSize, log),
		Form:      formcontrol.NewEditor(remote.NewFormControlRepository(client), templates, log),
		Slides: slide.NewEditor(remote.NewSlideRepository(client), local,
			batch.NewRunner(slidePolicy, cfg.Concurrency, log), urls, log),
		Events: event.NewEditor(remote.NewEventRepository(client), local,
			batch.NewRunner(eventPolicy, cfg.Concurrency, log), urls, cfg.Location, log),
	}, nil
}

// Factory собирает новый набор редакторов, например на каждый запрос API
type Factory func() (*Workspace, error)

// NewFactory возвращает фабрику с общими настройками и клиентом
func NewFactory(cfg config.Remote, client *remote.Client, log *slog.Logger) Factory {
	return func() (*Workspace, error) {
		return New(cfg, client, log)
	}
}

// Editor возвращает редактор экрана
func (w *Workspace) Editor(screen Screen) (Editor, error) {
	switch screen {
	case ScreenForm:
		return w.Form, nil
	case ScreenSlides:
		return w.Slides, nil
	case ScreenEvents:
		return w.Events, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}
}

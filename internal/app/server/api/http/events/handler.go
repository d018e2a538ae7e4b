package events

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server/api/http/apierr"
	"dayadmin/internal/domain/event"
	"dayadmin/internal/domain/media"
)

type Editor interface {
	Load(ctx context.Context) error
	Drafts() []event.Draft
	Restore(drafts []event.Draft)
	Edit(i int, field event.Field, value string) error
	AddLocal() int
	AttachImage(i int, file *media.File) error
	Delete(ctx context.Context, i int) error
	Save(ctx context.Context) error
}

// EditorFactory возвращает новый редактор на каждый запрос
type EditorFactory func() (Editor, error)

type Handler struct {
	editors    EditorFactory
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(editors EditorFactory, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		editors:    editors,
		log:        log.With(slog.String("component", "events_api")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*output, error) {
	ed, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return &output{Body: ed.Drafts()}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	ed, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := apply(ed, input.Body.Items); err != nil {
		return nil, apierr.From(h.log, err)
	}

	if err := ed.Save(ctx); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: ed.Drafts()}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	ed, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(ed.Drafts(), input.ID)
	if i < 0 {
		return nil, huma.Error404NotFound(fmt.Sprintf("event %q not found", input.ID))
	}

	if err := ed.Delete(ctx, i); err != nil {
		return nil, apierr.From(h.log, err)
	}

	h.log.Info("event deleted", slog.String("id", input.ID))
	return &deleteOutput{Body: ed.Drafts()}, nil
}

func (h *Handler) load(ctx context.Context) (Editor, error) {
	ed, err := h.editors()
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if err := ed.Load(ctx); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return ed, nil
}

// apply оставляет в редакторе только события из запроса, новые добавляются в конец
func apply(ed Editor, items []item) error {
	loaded := ed.Drafts()

	drafts := make([]event.Draft, 0, len(items))
	targets := make([]int, len(items))
	var fresh []int
	for n, it := range items {
		if it.ID == "" {
			fresh = append(fresh, n)
			continue
		}
		i := indexOf(loaded, it.ID)
		if i < 0 {
			return fmt.Errorf("%w: event %q", event.ErrIndexOutOfRange, it.ID)
		}
		targets[n] = len(drafts)
		drafts = append(drafts, loaded[i])
	}
	ed.Restore(drafts)
	for _, n := range fresh {
		targets[n] = ed.AddLocal()
	}

	for n, it := range items {
		i := targets[n]
		for _, f := range it.fields() {
			if err := ed.Edit(i, f.field, f.value); err != nil {
				return fmt.Errorf("event %d: %w", n+1, err)
			}
		}
		if it.Image != nil {
			if err := ed.AttachImage(i, media.NewFile(it.Image.Name, it.Image.Data)); err != nil {
				return fmt.Errorf("event %d: %w", n+1, err)
			}
		}
	}
	return nil
}

type fieldValue struct {
	field event.Field
	value string
}

func (it item) fields() []fieldValue {
	fields := []fieldValue{
		{event.FieldHeading, it.Heading},
		{event.FieldSubHeading, it.SubHeading},
	}
	if it.Date != "" {
		fields = append(fields, fieldValue{event.FieldDate, it.Date})
	}
	if it.Time != "" {
		fields = append(fields, fieldValue{event.FieldTime, it.Time})
	}
	return fields
}

func indexOf(drafts []event.Draft, id string) int {
	for i, d := range drafts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

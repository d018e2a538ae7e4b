package slides

import (
	"context"
	"fmt"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server/api/http/apierr"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/slide"
)

type Editor interface {
	Load(ctx context.Context) error
	Drafts() []slide.Draft
	Restore(drafts []slide.Draft)
	Edit(i int, field slide.Field, value string) error
	AttachImage(i int, file *media.File) error
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
		log:        log.With(slog.String("component", "slides_api")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
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

// apply строит список черновиков в порядке запроса поверх загруженных слайдов
func apply(ed Editor, items []item) error {
	if len(items) == 0 {
		return slide.ErrLastSlide
	}

	existing := make(map[string]slide.Draft)
	for _, d := range ed.Drafts() {
		existing[d.ID] = d
	}

	drafts := make([]slide.Draft, 0, len(items))
	for _, it := range items {
		d := slide.NewDraft()
		if it.ID != "" {
			base, ok := existing[it.ID]
			if !ok {
				return fmt.Errorf("%w: slide %q", slide.ErrIndexOutOfRange, it.ID)
			}
			d = base
		}
		drafts = append(drafts, d)
	}
	ed.Restore(drafts)

	for i, it := range items {
		for _, f := range it.fields() {
			if err := ed.Edit(i, f.field, f.value); err != nil {
				return fmt.Errorf("slide %d: %w", i+1, err)
			}
		}
		if it.Image != nil {
			if err := ed.AttachImage(i, media.NewFile(it.Image.Name, it.Image.Data)); err != nil {
				return fmt.Errorf("slide %d: %w", i+1, err)
			}
		}
	}
	return nil
}

type fieldValue struct {
	field slide.Field
	value string
}

func (it item) fields() []fieldValue {
	fields := []fieldValue{
		{slide.FieldHeading, it.Heading},
		{slide.FieldSubHeading, it.SubHeading},
		{slide.FieldImageCaption, it.ImageCaption},
		{slide.FieldShowButton, strconv.FormatBool(it.ShowButton)},
		{slide.FieldButtonText, it.ButtonText},
		{slide.FieldButtonLink, it.ButtonLink},
	}
	if it.Align != "" {
		fields = append(fields, fieldValue{slide.FieldAlign, it.Align})
	}
	return fields
}

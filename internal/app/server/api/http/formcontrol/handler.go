package formcontrol

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server/api/http/apierr"
	"dayadmin/internal/domain/formcontrol"
)

// Editor - операции редактора формы, нужные API
type Editor interface {
	Load(ctx context.Context) error
	Draft() formcontrol.Draft
	Edit(field formcontrol.Field, value string) error
	ToggleField(i int) error
	SelectOption(i int) error
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
		log:        log.With(slog.String("component", "form_control_api")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*output, error) {
	ed, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return &output{Body: ed.Draft()}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	ed, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := apply(ed, input.Body); err != nil {
		return nil, apierr.From(h.log, err)
	}

	if err := ed.Save(ctx); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: ed.Draft()}, nil
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

func apply(ed Editor, req updateRequest) error {
	texts := []struct {
		field formcontrol.Field
		value string
	}{
		{formcontrol.FieldFormTitle, req.FormTitle},
		{formcontrol.FieldOpenerText, req.FormOpenerButtonText},
		{formcontrol.FieldSubmitText, req.SubmitButtonText},
		{formcontrol.FieldSubmitColor, req.SubmitButtonColor},
	}
	for _, t := range texts {
		if t.value == "" {
			continue
		}
		if err := ed.Edit(t.field, t.value); err != nil {
			return err
		}
	}

	for _, f := range req.Fields {
		i, current, ok := findField(ed.Draft().Fields, f.Label)
		if !ok {
			return fmt.Errorf("%w: %q", formcontrol.ErrUnknownField, f.Label)
		}
		if current == f.Show {
			continue
		}
		if err := ed.ToggleField(i); err != nil {
			return err
		}
	}

	if req.SelectedOption != "" {
		i := findOption(ed.Draft().Options, req.SelectedOption)
		if i < 0 {
			return fmt.Errorf("%w: option %q", formcontrol.ErrIndexOutOfRange, req.SelectedOption)
		}
		if err := ed.SelectOption(i); err != nil {
			return err
		}
	}
	return nil
}

// findField ищет стандартное поле, метки сравниваются без учета регистра
func findField(fields []formcontrol.FieldToggle, label string) (int, bool, bool) {
	for i, f := range fields {
		if !f.Custom && strings.EqualFold(f.Label, strings.TrimSpace(label)) {
			return i, f.Show, true
		}
	}
	return -1, false, false
}

func findOption(options []formcontrol.Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

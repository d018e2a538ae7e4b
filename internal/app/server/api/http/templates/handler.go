package templates

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server/api/http/apierr"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/template"
)

// ServiceFactory возвращает сервис шаблонов для одного запроса
type ServiceFactory func() (template.Servicer, error)

type Handler struct {
	services   ServiceFactory
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(services ServiceFactory, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		services:   services,
		log:        log.With(slog.String("component", "templates_api")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	svc, err := h.services()
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	page, err := svc.Page(ctx, input.Page)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	items := make([]item, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, item{
			ID:                 t.ID,
			Name:               t.Name,
			RadioButtonText:    t.RadioButtonText,
			File:               t.File,
			Preview:            svc.Preview(t),
			Kind:               media.KindOf(t.File),
			NameCoordinate:     t.NameCoordinate,
			DateTimeCoordinate: t.DateTimeCoordinate,
		})
	}

	return &listOutput{
		Body: listResponse{
			Items:      items,
			Page:       page.Page,
			TotalPages: page.TotalPages,
			Total:      page.Total,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	svc, err := h.services()
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	req := input.Body
	draft := template.Draft{
		Name:            req.Name,
		RadioButtonText: req.RadioButtonText,
		NameX:           req.NameX,
		NameY:           req.NameY,
		DateTimeX:       req.DateTimeX,
		DateTimeY:       req.DateTimeY,
	}
	if req.File.Name != "" || len(req.File.Data) > 0 {
		draft.File = media.NewFile(req.File.Name, req.File.Data)
	}

	if err := svc.Create(ctx, draft); err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &createOutput{
		Body: response{
			Status:  "Ok",
			Message: "Template created",
		},
	}
	if draft.File != nil {
		out.Body.Kind = draft.File.Kind()
	}
	return out, nil
}

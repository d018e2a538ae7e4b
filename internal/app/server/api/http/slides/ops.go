package slides

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "slides-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/slides",
		Summary:     "Слайды карусели",
		Tags:        []string{"slides"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "slides-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/slides",
		Summary:     "Заменить и сохранить слайды",
		Description: "Порядок слайдов берется из порядка в запросе. Слайды, которых нет в запросе, на удаленном API не удаляются.",
		Tags:        []string{"slides"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

package templates

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "templates-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/templates",
		Summary:     "Страница шаблонов",
		Description: "Только заполненные шаблоны, новые первыми. Номер страницы приводится к допустимому.",
		Tags:        []string{"templates"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "templates-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/templates",
		Summary:       "Создать шаблон",
		Description:   "Загружает файл, затем создает шаблон с полученным именем файла",
		Tags:          []string{"templates"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"apiKey": {}}},
		Middlewares:   h.middleware,
	}
}

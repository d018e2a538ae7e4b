package formcontrol

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "form-control-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/form-control",
		Summary:     "Настройки формы",
		Description: "Форма с вариантами переключателя, построенными по списку шаблонов",
		Tags:        []string{"form-control"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "form-control-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/form-control",
		Summary:     "Изменить и сохранить форму",
		Description: "Создает форму, если ее еще нет, иначе обновляет. Возвращает перечитанную форму.",
		Tags:        []string{"form-control"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

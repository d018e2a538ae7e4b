package events

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "events-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/events",
		Summary:     "События календаря",
		Tags:        []string{"events"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "events-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/events",
		Summary:     "Изменить и сохранить события",
		Description: "Записи отправляются по настроенной политике пакета. События, которых нет в запросе, не меняются.",
		Tags:        []string{"events"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "events-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/events/{id}",
		Summary:     "Удалить событие",
		Description: "Удаляет событие на удаленном API и возвращает перечитанный список",
		Tags:        []string{"events"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

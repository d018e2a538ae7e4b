package events

import "dayadmin/internal/domain/event"

type output struct {
	Body []event.Draft
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	Items []item `json:"items" doc:"События для сохранения"`
}

// item - событие без id создается, с id обновляется.
// Пустые дата и время оставляют текущие значения.
type item struct {
	ID         string `json:"id,omitempty"`
	Heading    string `json:"heading"`
	SubHeading string `json:"subHeading,omitempty"`
	Date       string `json:"date,omitempty" example:"2024-10-31" doc:"Дата в формате YYYY-MM-DD"`
	Time       string `json:"time,omitempty" example:"09:00" doc:"Время в формате HH:MM"`
	Image      *file  `json:"image,omitempty" doc:"Новое изображение"`
}

type file struct {
	Name string `json:"name" example:"diwali.jpg"`
	Data []byte `json:"data" doc:"Содержимое файла в base64"`
}

type deleteInput struct {
	ID string `path:"id" example:"66f1c2" doc:"ID события"`
}

type deleteOutput struct {
	Body []event.Draft
}

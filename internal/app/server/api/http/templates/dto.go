package templates

import (
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/template"
)

type listInput struct {
	Page int `query:"page" default:"1" minimum:"1" example:"2" doc:"Номер страницы, начиная с 1"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items      []item `json:"items"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Total      int    `json:"total"`
}

type item struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	RadioButtonText    string              `json:"radioButtonText"`
	File               string              `json:"file"`
	Preview            string              `json:"preview" doc:"Ссылка на файл шаблона"`
	Kind               media.Kind          `json:"kind" enum:"image,pdf,other" doc:"Тип файла для предпросмотра"`
	NameCoordinate     template.Coordinate `json:"nameCoordinate"`
	DateTimeCoordinate template.Coordinate `json:"dateTimeCoordinate"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name            string `json:"name" doc:"Название шаблона"`
	RadioButtonText string `json:"radioButtonText" doc:"Текст переключателя в форме"`
	NameX           string `json:"nameX,omitempty" doc:"X координата имени"`
	NameY           string `json:"nameY,omitempty" doc:"Y координата имени"`
	DateTimeX       string `json:"dateTimeX,omitempty" doc:"X координата даты"`
	DateTimeY       string `json:"dateTimeY,omitempty" doc:"Y координата даты"`
	File            file   `json:"file"`
}

// file - файл в теле запроса, данные в base64
type file struct {
	Name string `json:"name" example:"certificate.pdf"`
	Data []byte `json:"data" doc:"Содержимое файла в base64"`
}

type createOutput struct {
	Body response
}

type response struct {
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
	Kind    media.Kind `json:"kind,omitempty" doc:"Тип загруженного файла"`
}

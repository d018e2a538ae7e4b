package slides

import "dayadmin/internal/domain/slide"

type output struct {
	Body []slide.Draft
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	Items []item `json:"items" minItems:"1" doc:"Полный список слайдов в порядке показа"`
}

// item - слайд без id создается, с id обновляется
type item struct {
	ID           string `json:"id,omitempty"`
	Heading      string `json:"heading"`
	SubHeading   string `json:"subHeading,omitempty"`
	ImageCaption string `json:"imageCaption,omitempty"`
	ShowButton   bool   `json:"showButton"`
	ButtonText   string `json:"buttonText,omitempty"`
	ButtonLink   string `json:"buttonLink,omitempty"`
	Align        string `json:"align,omitempty" example:"left" doc:"left или right"`
	Image        *file  `json:"image,omitempty" doc:"Новое изображение"`
}

type file struct {
	Name string `json:"name" example:"banner.jpg"`
	Data []byte `json:"data" doc:"Содержимое файла в base64"`
}

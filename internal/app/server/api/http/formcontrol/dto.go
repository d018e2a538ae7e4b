package formcontrol

import "dayadmin/internal/domain/formcontrol"

type output struct {
	Body formcontrol.Draft
}

type updateInput struct {
	Body updateRequest
}

// updateRequest - пустые строки оставляют текущее значение
type updateRequest struct {
	FormTitle            string  `json:"formTitle,omitempty" doc:"Заголовок формы"`
	FormOpenerButtonText string  `json:"formOpenerButtonText,omitempty" doc:"Текст кнопки открытия"`
	SubmitButtonText     string  `json:"submitButtonText,omitempty" doc:"Текст кнопки отправки"`
	SubmitButtonColor    string  `json:"submitButtonColor,omitempty" example:"#6f3a8f" doc:"Цвет кнопки отправки"`
	Fields               []field `json:"fields,omitempty" doc:"Видимость стандартных полей"`
	SelectedOption       string  `json:"selectedOption,omitempty" doc:"ID шаблона, который станет единственным вариантом"`
}

type field struct {
	Label string `json:"label" example:"Email" doc:"Name, Phone, City или Email"`
	Show  bool   `json:"show"`
}

package formcontrol

import (
	"fmt"
	"regexp"

	"dayadmin/internal/domain/template"
)

const (
	DefaultFormTitle  = "Pledge Form"
	DefaultOpenerText = "Take a Pledge"
	DefaultSubmitText = "Submit"
	DefaultColor      = "#6f3a8f"

	LabelName  = "Name"
	LabelPhone = "Phone"
	LabelCity  = "City"
	LabelEmail = "Email"

	fieldTypeText = "text"
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Remote - запись формы в удаленном API. Флаги могут отсутствовать.
type Remote struct {
	ID                   string   `json:"_id,omitempty"`
	FormTitle            string   `json:"formTitle"`
	FormOpenerButtonText string   `json:"formOpenerButtonText"`
	SubmitButtonText     string   `json:"submitButtonText"`
	SubmitButtonColor    string   `json:"submitButtonColor"`
	ShowNameField        *bool    `json:"showNameField,omitempty"`
	ShowPhoneField       *bool    `json:"showPhoneField,omitempty"`
	ShowCityField        *bool    `json:"showCityField,omitempty"`
	ShowEmailField       *bool    `json:"showEmailField,omitempty"`
	EventRadioBtns       []string `json:"eventRadioBtns"`
}

// Payload - тело create/update запроса
type Payload struct {
	ID                   string   `json:"_id,omitempty"`
	FormOpenerButtonText string   `json:"formOpenerButtonText"`
	FormTitle            string   `json:"formTitle"`
	SubmitButtonText     string   `json:"submitButtonText"`
	SubmitButtonColor    string   `json:"submitButtonColor"`
	ShowNameField        bool     `json:"showNameField"`
	ShowPhoneField       bool     `json:"showPhoneField"`
	ShowCityField        bool     `json:"showCityField"`
	ShowEmailField       bool     `json:"showEmailField"`
	EventRadioBtns       []string `json:"eventRadioBtns"`
}

// FieldToggle - поле формы и его видимость. Custom-поля существуют только локально.
type FieldToggle struct {
	Label  string `json:"label"`
	Type   string `json:"type"`
	Show   bool   `json:"show"`
	Custom bool   `json:"custom,omitempty"`
}

// Option - вариант переключателя, связанный с шаблоном
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Show  bool   `json:"show"`
}

type Draft struct {
	ID                   string        `json:"id,omitempty"`
	FormTitle            string        `json:"formTitle"`
	FormOpenerButtonText string        `json:"formOpenerButtonText"`
	SubmitButtonText     string        `json:"submitButtonText"`
	SubmitButtonColor    string        `json:"submitButtonColor"`
	Fields               []FieldToggle `json:"fields"`
	Options              []Option      `json:"options"`
}

// DefaultFields - фиксированные поля формы: имя, телефон и город видны, email скрыт
func DefaultFields() []FieldToggle {
	return []FieldToggle{
		{Label: LabelName, Type: fieldTypeText, Show: true},
		{Label: LabelPhone, Type: fieldTypeText, Show: true},
		{Label: LabelCity, Type: fieldTypeText, Show: true},
		{Label: LabelEmail, Type: fieldTypeText, Show: false},
	}
}

// DefaultDraft - черновик формы, пока запись на сервере не создана
func DefaultDraft() Draft {
	return Draft{
		FormTitle:            DefaultFormTitle,
		FormOpenerButtonText: DefaultOpenerText,
		SubmitButtonText:     DefaultSubmitText,
		SubmitButtonColor:    DefaultColor,
		Fields:               DefaultFields(),
		Options:              []Option{},
	}
}

// OptionsFromTemplates строит варианты переключателя, все скрыты
func OptionsFromTemplates(list []template.Template) []Option {
	opts := make([]Option, 0, len(list))
	for _, t := range list {
		opts = append(opts, Option{Label: t.Name, Value: t.ID})
	}
	return opts
}

// ToDraft накладывает удаленную запись на текущие поля и варианты.
// Отсутствующие флаги полей сохраняют текущее значение.
func ToDraft(r Remote, fields []FieldToggle, options []Option) Draft {
	d := Draft{
		ID:                   r.ID,
		FormTitle:            r.FormTitle,
		FormOpenerButtonText: r.FormOpenerButtonText,
		SubmitButtonText:     r.SubmitButtonText,
		SubmitButtonColor:    r.SubmitButtonColor,
		Fields:               make([]FieldToggle, len(fields)),
		Options:              make([]Option, len(options)),
	}
	if d.SubmitButtonColor == "" {
		d.SubmitButtonColor = DefaultColor
	}

	flags := map[string]*bool{
		LabelName:  r.ShowNameField,
		LabelPhone: r.ShowPhoneField,
		LabelCity:  r.ShowCityField,
		LabelEmail: r.ShowEmailField,
	}
	for i, f := range fields {
		if flag := flags[f.Label]; flag != nil && !f.Custom {
			f.Show = *flag
		}
		d.Fields[i] = f
	}

	selected := make(map[string]bool, len(r.EventRadioBtns))
	for _, id := range r.EventRadioBtns {
		selected[id] = true
	}
	for i, o := range options {
		o.Show = selected[o.Value]
		d.Options[i] = o
	}

	return d
}

// ToPayload сериализует черновик: в eventRadioBtns попадают только видимые варианты
func (d Draft) ToPayload() Payload {
	p := Payload{
		ID:                   d.ID,
		FormOpenerButtonText: d.FormOpenerButtonText,
		FormTitle:            d.FormTitle,
		SubmitButtonText:     d.SubmitButtonText,
		SubmitButtonColor:    d.SubmitButtonColor,
		ShowNameField:        d.shown(LabelName),
		ShowPhoneField:       d.shown(LabelPhone),
		ShowCityField:        d.shown(LabelCity),
		ShowEmailField:       d.shown(LabelEmail),
		EventRadioBtns:       make([]string, 0, 1),
	}
	for _, o := range d.Options {
		if o.Show {
			p.EventRadioBtns = append(p.EventRadioBtns, o.Value)
		}
	}
	return p
}

func (d Draft) shown(label string) bool {
	for _, f := range d.Fields {
		if f.Label == label && !f.Custom {
			return f.Show
		}
	}
	return false
}

func (d Draft) clone() Draft {
	c := d
	c.Fields = append([]FieldToggle(nil), d.Fields...)
	c.Options = append([]Option(nil), d.Options...)
	if c.Fields == nil {
		c.Fields = []FieldToggle{}
	}
	if c.Options == nil {
		c.Options = []Option{}
	}
	return c
}

// Field - редактируемое текстовое поле формы
type Field string

const (
	FieldFormTitle   Field = "formTitle"
	FieldOpenerText  Field = "formOpenerButtonText"
	FieldSubmitText  Field = "submitButtonText"
	FieldSubmitColor Field = "submitButtonColor"
)

// ParseField проверяет имя редактируемого поля
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldFormTitle, FieldOpenerText, FieldSubmitText, FieldSubmitColor:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

func validColor(s string) bool {
	return colorRe.MatchString(s)
}

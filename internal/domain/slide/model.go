package slide

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"dayadmin/internal/domain/media"
)

type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// ParseAlign принимает только left или right
func ParseAlign(s string) (Align, error) {
	switch a := Align(s); a {
	case AlignLeft, AlignRight:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlign, s)
	}
}

// Slide - слайд карусели в формате удаленного API
type Slide struct {
	ID           string `json:"_id,omitempty"`
	Heading      string `json:"heading"`
	SubHeading   string `json:"subHeading"`
	Image        string `json:"image"`
	ImageCaption string `json:"imageCaption"`
	Order        int    `json:"order"`
	ShowButton   bool   `json:"showButton"`
	ButtonText   string `json:"buttonText"`
	ButtonLink   string `json:"buttonLink"`
	Align        Align  `json:"align"`
}

// Draft - редактируемый слайд. Key стабилен в пределах сессии редактирования,
// File и Preview в удаленный API не отправляются.
type Draft struct {
	Key          string      `json:"key"`
	ID           string      `json:"id,omitempty"`
	Heading      string      `json:"heading"`
	SubHeading   string      `json:"subHeading"`
	Image        string      `json:"image"`
	ImageCaption string      `json:"imageCaption"`
	ShowButton   bool        `json:"showButton"`
	ButtonText   string      `json:"buttonText"`
	ButtonLink   string      `json:"buttonLink"`
	Align        Align       `json:"align"`
	File         *media.File `json:"file,omitempty"`
	Preview      string      `json:"preview,omitempty"`
}

// NewDraft - пустой слайд с кнопкой и выравниванием влево
func NewDraft() Draft {
	return Draft{
		Key:        uuid.NewString(),
		ShowButton: true,
		Align:      AlignLeft,
	}
}

// ToDraft переводит слайд в черновик, пустое выравнивание становится left
func ToDraft(s Slide, urls media.URLs) Draft {
	align := s.Align
	if align == "" {
		align = AlignLeft
	}
	return Draft{
		Key:          uuid.NewString(),
		ID:           s.ID,
		Heading:      s.Heading,
		SubHeading:   s.SubHeading,
		Image:        s.Image,
		ImageCaption: s.ImageCaption,
		ShowButton:   s.ShowButton,
		ButtonText:   s.ButtonText,
		ButtonLink:   s.ButtonLink,
		Align:        align,
		Preview:      urls.Static(s.Image),
	}
}

// ToPayload собирает слайд для отправки, order - позиция в списке
func (d Draft) ToPayload(order int, image string) Slide {
	return Slide{
		ID:           d.ID,
		Heading:      d.Heading,
		SubHeading:   d.SubHeading,
		Image:        image,
		ImageCaption: d.ImageCaption,
		Order:        order,
		ShowButton:   d.ShowButton,
		ButtonText:   d.ButtonText,
		ButtonLink:   d.ButtonLink,
		Align:        d.Align,
	}
}

// Field - редактируемое поле слайда
type Field string

const (
	FieldHeading      Field = "heading"
	FieldSubHeading   Field = "subHeading"
	FieldImageCaption Field = "imageCaption"
	FieldShowButton   Field = "showButton"
	FieldButtonText   Field = "buttonText"
	FieldButtonLink   Field = "buttonLink"
	FieldAlign        Field = "align"
)

// ParseField проверяет имя редактируемого поля
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldHeading, FieldSubHeading, FieldImageCaption, FieldShowButton,
		FieldButtonText, FieldButtonLink, FieldAlign:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

func (d *Draft) set(field Field, value string) error {
	switch field {
	case FieldHeading:
		d.Heading = value
	case FieldSubHeading:
		d.SubHeading = value
	case FieldImageCaption:
		d.ImageCaption = value
	case FieldShowButton:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: showButton=%q", ErrInvalidValue, value)
		}
		d.ShowButton = b
	case FieldButtonText:
		d.ButtonText = value
	case FieldButtonLink:
		d.ButtonLink = value
	case FieldAlign:
		a, err := ParseAlign(value)
		if err != nil {
			return err
		}
		d.Align = a
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

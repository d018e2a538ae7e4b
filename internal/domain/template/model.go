package template

import (
	"fmt"
	"strconv"
	"strings"

	"dayadmin/internal/domain/media"
)

type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Template - шаблон документа с координатами для имени и даты
type Template struct {
	ID                 string     `json:"_id,omitempty"`
	Name               string     `json:"name"`
	RadioButtonText    string     `json:"radioButtonText"`
	File               string     `json:"file"`
	NameCoordinate     Coordinate `json:"nameCoordinate"`
	DateTimeCoordinate Coordinate `json:"dateTimeCoordinate"`
}

// Listable - в списке показываются только полностью заполненные шаблоны
func (t Template) Listable() bool {
	return t.Name != "" && t.RadioButtonText != "" && t.File != ""
}

// Draft - форма создания шаблона. Координаты хранятся текстом, как их ввел оператор.
type Draft struct {
	Name            string      `json:"name"`
	RadioButtonText string      `json:"radioButtonText"`
	NameX           string      `json:"nameX"`
	NameY           string      `json:"nameY"`
	DateTimeX       string      `json:"dateTimeX"`
	DateTimeY       string      `json:"dateTimeY"`
	File            *media.File `json:"file,omitempty"`
}

// Validate проверяет обязательные поля формы
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.RadioButtonText) == "" || d.File.Validate() != nil {
		return ErrMissingFields
	}
	return nil
}

// ToPayload собирает запись для удаленного API, filename - имя загруженного файла
func (d Draft) ToPayload(filename string) (Template, error) {
	nameCoord, err := ParseCoordinate(d.NameX, d.NameY)
	if err != nil {
		return Template{}, fmt.Errorf("name coordinate: %w", err)
	}
	dateCoord, err := ParseCoordinate(d.DateTimeX, d.DateTimeY)
	if err != nil {
		return Template{}, fmt.Errorf("date-time coordinate: %w", err)
	}

	return Template{
		Name:               d.Name,
		RadioButtonText:    d.RadioButtonText,
		File:               filename,
		NameCoordinate:     nameCoord,
		DateTimeCoordinate: dateCoord,
	}, nil
}

// ParseCoordinate приводит текст к числам, пустое значение считается нулем
func ParseCoordinate(x, y string) (Coordinate, error) {
	cx, err := parseAxis(x)
	if err != nil {
		return Coordinate{}, err
	}
	cy, err := parseAxis(y)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: cx, Y: cy}, nil
}

func parseAxis(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return v, nil
}

// Page - одна страница списка шаблонов
type Page struct {
	Items      []Template `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int        `json:"total"`
}

// Paginate режет список на страницы, номер страницы приводится к допустимому диапазону
func Paginate(list []Template, page, size int) Page {
	if size <= 0 {
		size = 1
	}

	total := len(list)
	totalPages := (total + size - 1) / size

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]Template, end-start)
	copy(items, list[start:end])

	return Page{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

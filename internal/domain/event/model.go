package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayadmin/internal/domain/media"
)

const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04"
	DefaultTime = "09:00"

	// формат ISO-момента, который ожидает удаленный API
	wireLayout = "2006-01-02T15:04:05.000Z"
)

// Event - событие в формате удаленного API
type Event struct {
	ID         string `json:"_id,omitempty"`
	Heading    string `json:"heading"`
	SubHeading string `json:"subHeading"`
	Image      string `json:"image"`
	EventDate  string `json:"eventDate"`
}

// Draft - редактируемое событие. Дата и время хранятся раздельно,
// Stored - исходное значение eventDate для точного обратного преобразования.
type Draft struct {
	Key        string      `json:"key"`
	ID         string      `json:"id,omitempty"`
	Heading    string      `json:"heading"`
	SubHeading string      `json:"subHeading"`
	Image      string      `json:"image"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	Stored     string      `json:"stored,omitempty"`
	File       *media.File `json:"file,omitempty"`
	Preview    string      `json:"preview,omitempty"`
}

// Split разбивает ISO-момент на дату и время в указанной зоне
func Split(raw string, loc *time.Location) (string, string, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDateTime, raw)
	}
	t = t.In(loc)
	return t.Format(DateLayout), t.Format(TimeLayout), nil
}

// Combine собирает дату и время обратно в ISO-момент UTC с миллисекундами
func Combine(date, clock string, loc *time.Location) (string, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return "", fmt.Errorf("%w: %q %q", ErrInvalidDateTime, date, clock)
	}
	return t.UTC().Format(wireLayout), nil
}

// NewDraft - новое событие на сегодня в 09:00
func NewDraft(now time.Time, loc *time.Location) Draft {
	return Draft{
		Key:  uuid.NewString(),
		Date: now.In(loc).Format(DateLayout),
		Time: DefaultTime,
	}
}

// ToDraft разбивает дату события на день и время в зоне loc
func ToDraft(e Event, urls media.URLs, loc *time.Location) Draft {
	d := Draft{
		Key:        uuid.NewString(),
		ID:         e.ID,
		Heading:    e.Heading,
		SubHeading: e.SubHeading,
		Image:      e.Image,
		Stored:     e.EventDate,
		Preview:    urls.Static(e.Image),
	}
	if date, clock, err := Split(e.EventDate, loc); err == nil {
		d.Date, d.Time = date, clock
	}
	return d
}

// ToPayload собирает событие для отправки. Если дата и время не менялись,
// уходит исходное значение eventDate без изменений.
func (d Draft) ToPayload(image string, loc *time.Location) (Event, error) {
	eventDate, err := d.eventDate(loc)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         d.ID,
		Heading:    d.Heading,
		SubHeading: d.SubHeading,
		Image:      image,
		EventDate:  eventDate,
	}, nil
}

func (d Draft) eventDate(loc *time.Location) (string, error) {
	if d.Stored != "" {
		date, clock, err := Split(d.Stored, loc)
		switch {
		case err != nil && d.Date == "" && d.Time == "":
			return d.Stored, nil
		case err == nil && date == d.Date && clock == d.Time:
			return d.Stored, nil
		}
	}
	return Combine(d.Date, d.Time, loc)
}

// Field - редактируемое поле события
type Field string

const (
	FieldHeading    Field = "heading"
	FieldSubHeading Field = "subHeading"
	FieldDate       Field = "date"
	FieldTime       Field = "time"
)

// ParseField проверяет имя редактируемого поля
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldHeading, FieldSubHeading, FieldDate, FieldTime:
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
	case FieldDate:
		if _, err := time.Parse(DateLayout, value); err != nil {
			return fmt.Errorf("%w: date %q", ErrInvalidDateTime, value)
		}
		d.Date = value
	case FieldTime:
		if _, err := time.Parse(TimeLayout, value); err != nil {
			return fmt.Errorf("%w: time %q", ErrInvalidDateTime, value)
		}
		d.Time = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

package formcontrol

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
)

// Editor держит локальную копию настроек формы
type Editor struct {
	repo    Repository
	options OptionSource
	guard   batch.Guard
	log     *slog.Logger

	mu    sync.Mutex
	draft Draft
}

// NewEditor создает редактор с черновиком по умолчанию
func NewEditor(repo Repository, options OptionSource, log *slog.Logger) *Editor {
	return &Editor{
		repo:    repo,
		options: options,
		log:     log.With(slog.String("component", "form_control")),
		draft:   DefaultDraft(),
	}
}

// Load загружает шаблоны для вариантов, затем саму форму.
// При ошибке текущий черновик не меняется.
func (e *Editor) Load(ctx context.Context) error {
	templates, err := e.options.List(ctx)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	options := OptionsFromTemplates(templates)

	remote, err := e.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load form control: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if remote == nil {
		// запись могла быть удалена на сервере: следующее сохранение создаст ее заново
		next := e.draft.clone()
		next.ID = ""
		next.Options = options
		e.draft = next
		e.log.Debug("form control not created yet")
		return nil
	}

	e.draft = ToDraft(*remote, e.draft.Fields, options)
	e.log.Debug("form control loaded", slog.String("id", remote.ID), slog.Int("options", len(options)))
	return nil
}

// Draft возвращает копию черновика
func (e *Editor) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.clone()
}

// Restore заменяет черновик, например из сохраненного снимка
func (e *Editor) Restore(d Draft) {
	e.mu.Lock()
	e.draft = d.clone()
	e.mu.Unlock()
}

// Edit меняет одно текстовое поле формы
func (e *Editor) Edit(field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case FieldFormTitle:
		e.draft.FormTitle = value
	case FieldOpenerText:
		e.draft.FormOpenerButtonText = value
	case FieldSubmitText:
		e.draft.SubmitButtonText = value
	case FieldSubmitColor:
		if !validColor(value) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
		e.draft.SubmitButtonColor = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ToggleField переключает видимость поля
func (e *Editor) ToggleField(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if i < 0 || i >= len(e.draft.Fields) {
		return fmt.Errorf("%w: field %d", ErrIndexOutOfRange, i)
	}
	e.draft.Fields[i].Show = !e.draft.Fields[i].Show
	return nil
}

// AddField добавляет локальное поле. Метки сравниваются без учета регистра.
func (e *Editor) AddField(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, f := range e.draft.Fields {
		if strings.EqualFold(f.Label, label) {
			return fmt.Errorf("%w: %q", ErrDuplicateField, label)
		}
	}
	e.draft.Fields = append(e.draft.Fields, FieldToggle{
		Label:  label,
		Type:   fieldTypeText,
		Show:   true,
		Custom: true,
	})
	return nil
}

// SelectOption делает выбранный вариант единственным видимым
func (e *Editor) SelectOption(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if i < 0 || i >= len(e.draft.Options) {
		return fmt.Errorf("%w: option %d", ErrIndexOutOfRange, i)
	}
	for j := range e.draft.Options {
		e.draft.Options[j].Show = j == i
	}
	return nil
}

// Save создает или обновляет форму и перечитывает ее
func (e *Editor) Save(ctx context.Context) error {
	if err := e.guard.Acquire(); err != nil {
		return err
	}
	defer e.guard.Release()

	payload := e.Draft().ToPayload()

	if payload.ID == "" {
		if err := e.repo.Create(ctx, payload); err != nil {
			return fmt.Errorf("create form control: %w", err)
		}
	} else {
		if err := e.repo.Update(ctx, payload); err != nil {
			return fmt.Errorf("update form control: %w", err)
		}
	}

	e.log.Info("form control saved", slog.String("id", payload.ID), slog.Int("options", len(payload.EventRadioBtns)))

	if err := e.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", batch.ErrReload, err)
	}
	return nil
}

// Snapshot сериализует черновик для хранения между запусками
func (e *Editor) Snapshot() ([]byte, error) {
	return json.Marshal(e.Draft())
}

// RestoreSnapshot восстанавливает черновик из снимка
func (e *Editor) RestoreSnapshot(data []byte) error {
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("decode form control snapshot: %w", err)
	}
	e.Restore(d)
	return nil
}

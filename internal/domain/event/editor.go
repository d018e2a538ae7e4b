package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/media"
)

// Editor держит локальные черновики событий
type Editor struct {
	repo     Repository
	uploader media.Uploader
	runner   *batch.Runner
	urls     media.URLs
	loc      *time.Location
	now      func() time.Time
	guard    batch.Guard
	log      *slog.Logger

	mu     sync.Mutex
	drafts []Draft
}

// NewEditor создает редактор событий с пустым списком черновиков
func NewEditor(repo Repository, uploader media.Uploader, runner *batch.Runner, urls media.URLs, loc *time.Location, log *slog.Logger) *Editor {
	if loc == nil {
		loc = time.Local
	}
	return &Editor{
		repo:     repo,
		uploader: uploader,
		runner:   runner,
		urls:     urls,
		loc:      loc,
		now:      time.Now,
		log:      log.With(slog.String("component", "events")),
		drafts:   []Draft{},
	}
}

// Load перечитывает события. При ошибке черновики не меняются.
func (e *Editor) Load(ctx context.Context) error {
	events, err := e.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	drafts := make([]Draft, 0, len(events))
	for _, ev := range events {
		drafts = append(drafts, ToDraft(ev, e.urls, e.loc))
	}

	e.mu.Lock()
	e.drafts = drafts
	e.mu.Unlock()

	e.log.Debug("events loaded", slog.Int("count", len(drafts)))
	return nil
}

// Drafts возвращает копию списка черновиков
func (e *Editor) Drafts() []Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneDrafts(e.drafts)
}

// Restore заменяет черновики, например из сохраненного снимка
func (e *Editor) Restore(drafts []Draft) {
	e.mu.Lock()
	e.drafts = cloneDrafts(drafts)
	e.mu.Unlock()
}

// Edit меняет одно поле одного события
func (e *Editor) Edit(i int, field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkIndex(i); err != nil {
		return err
	}
	return e.drafts[i].set(field, value)
}

// AddLocal добавляет событие на сегодня в 09:00 и возвращает его индекс
func (e *Editor) AddLocal() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.drafts = append(e.drafts, NewDraft(e.now(), e.loc))
	return len(e.drafts) - 1
}

// AttachImage прикрепляет новое изображение, оно загружается при сохранении
func (e *Editor) AttachImage(i int, file *media.File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkIndex(i); err != nil {
		return err
	}
	e.drafts[i].File = file
	e.drafts[i].Image = ""
	e.drafts[i].Preview = file.DataURL()
	return nil
}

// Delete удаляет событие. Несохраненное событие просто убирается из списка,
// сохраненное удаляется на сервере, после чего список перечитывается.
func (e *Editor) Delete(ctx context.Context, i int) error {
	e.mu.Lock()
	if err := e.checkIndex(i); err != nil {
		e.mu.Unlock()
		return err
	}
	d := e.drafts[i]
	if d.ID == "" {
		e.drafts = append(e.drafts[:i:i], e.drafts[i+1:]...)
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	if err := e.repo.Delete(ctx, d.ID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	e.log.Info("event deleted", slog.String("id", d.ID))

	if err := e.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", batch.ErrReload, err)
	}
	return nil
}

// Save отправляет события по политике пакета, затем перечитывает список
func (e *Editor) Save(ctx context.Context) error {
	if err := e.guard.Acquire(); err != nil {
		return err
	}
	defer e.guard.Release()

	drafts := e.Drafts()

	err := e.runner.Run(ctx, len(drafts), func(ctx context.Context, i int) error {
		return e.submit(ctx, drafts[i])
	})
	if err != nil {
		e.log.Warn("events save failed", slog.Any("error", err))
		return fmt.Errorf("save events: %w", err)
	}

	e.log.Info("events saved", slog.Int("count", len(drafts)), slog.String("policy", string(e.runner.Policy())))

	if err := e.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", batch.ErrReload, err)
	}
	return nil
}

func (e *Editor) submit(ctx context.Context, d Draft) error {
	image := d.Image
	if d.File != nil {
		name, err := e.uploader.Upload(ctx, d.File)
		if err != nil {
			return fmt.Errorf("upload image: %w", err)
		}
		if name == "" {
			return media.ErrEmptyFilename
		}
		image = name
	}

	payload, err := d.ToPayload(image, e.loc)
	if err != nil {
		return err
	}
	if d.ID == "" {
		return e.repo.Create(ctx, payload)
	}
	return e.repo.Update(ctx, payload)
}

// Snapshot сериализует черновики для хранения между запусками
func (e *Editor) Snapshot() ([]byte, error) {
	return json.Marshal(e.Drafts())
}

// RestoreSnapshot восстанавливает черновики из снимка
func (e *Editor) RestoreSnapshot(data []byte) error {
	var drafts []Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return fmt.Errorf("decode events snapshot: %w", err)
	}
	e.Restore(drafts)
	return nil
}

func (e *Editor) checkIndex(i int) error {
	if i < 0 || i >= len(e.drafts) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}

func cloneDrafts(in []Draft) []Draft {
	out := make([]Draft, len(in))
	copy(out, in)
	return out
}

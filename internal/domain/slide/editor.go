package slide

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/media"
)

// Editor держит локальные черновики слайдов карусели
type Editor struct {
	repo     Repository
	uploader media.Uploader
	runner   *batch.Runner
	urls     media.URLs
	guard    batch.Guard
	log      *slog.Logger

	mu     sync.Mutex
	drafts []Draft
}

// NewEditor создает редактор слайдов с пустым списком черновиков
func NewEditor(repo Repository, uploader media.Uploader, runner *batch.Runner, urls media.URLs, log *slog.Logger) *Editor {
	return &Editor{
		repo:     repo,
		uploader: uploader,
		runner:   runner,
		urls:     urls,
		log:      log.With(slog.String("component", "slides")),
		drafts:   []Draft{},
	}
}

// Load перечитывает слайды. При ошибке черновики не меняются.
func (e *Editor) Load(ctx context.Context) error {
	slides, err := e.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load slides: %w", err)
	}

	drafts := make([]Draft, 0, len(slides))
	for _, s := range slides {
		drafts = append(drafts, ToDraft(s, e.urls))
	}

	e.mu.Lock()
	e.drafts = drafts
	e.mu.Unlock()

	e.log.Debug("slides loaded", slog.Int("count", len(drafts)))
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

// Edit меняет одно поле одного слайда
func (e *Editor) Edit(i int, field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkIndex(i); err != nil {
		return err
	}
	return e.drafts[i].set(field, value)
}

// AddLocal добавляет пустой слайд в конец и возвращает его индекс
func (e *Editor) AddLocal() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.drafts = append(e.drafts, NewDraft())
	return len(e.drafts) - 1
}

// RemoveLocal убирает слайд только из локального списка
func (e *Editor) RemoveLocal(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkIndex(i); err != nil {
		return err
	}
	if len(e.drafts) == 1 {
		return ErrLastSlide
	}
	e.drafts = append(e.drafts[:i:i], e.drafts[i+1:]...)
	return nil
}

// AttachImage прикрепляет новый файл изображения, он будет загружен при сохранении
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

// Save отправляет все слайды по политике пакета, затем перечитывает список.
// Порядок слайдов пересчитывается по позиции в списке.
func (e *Editor) Save(ctx context.Context) error {
	if err := e.guard.Acquire(); err != nil {
		return err
	}
	defer e.guard.Release()

	drafts := e.Drafts()

	err := e.runner.Run(ctx, len(drafts), func(ctx context.Context, i int) error {
		return e.submit(ctx, i, drafts[i])
	})
	if err != nil {
		e.log.Warn("slides save failed", slog.Any("error", err))
		return fmt.Errorf("save slides: %w", err)
	}

	e.log.Info("slides saved", slog.Int("count", len(drafts)), slog.String("policy", string(e.runner.Policy())))

	if err := e.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", batch.ErrReload, err)
	}
	return nil
}

func (e *Editor) submit(ctx context.Context, order int, d Draft) error {
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

	payload := d.ToPayload(order, image)
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
		return fmt.Errorf("decode slides snapshot: %w", err)
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

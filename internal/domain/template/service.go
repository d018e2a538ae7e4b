package template

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/media"
)

type Servicer interface {
	List(ctx context.Context) ([]Template, error)
	Page(ctx context.Context, page int) (Page, error)
	Create(ctx context.Context, d Draft) error
	Preview(t Template) string
}

type Service struct {
	repo     Repository
	uploader media.Uploader
	urls     media.URLs
	pageSize int
	guard    batch.Guard
	log      *slog.Logger
}

// NewService создает сервис шаблонов
func NewService(repo Repository, uploader media.Uploader, urls media.URLs, pageSize int, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		urls:     urls,
		pageSize: pageSize,
		log:      log.With(slog.String("component", "templates")),
	}
}

// List возвращает заполненные шаблоны, новые первыми
func (s *Service) List(ctx context.Context) ([]Template, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	valid := make([]Template, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Listable() {
			valid = append(valid, all[i])
		}
	}

	s.log.Debug("templates loaded", slog.Int("total", len(all)), slog.Int("listable", len(valid)))
	return valid, nil
}

// Page загружает список и возвращает нужную страницу
func (s *Service) Page(ctx context.Context, page int) (Page, error) {
	list, err := s.List(ctx)
	if err != nil {
		return Page{}, err
	}
	return Paginate(list, page, s.pageSize), nil
}

// Create загружает файл, затем создает шаблон с полученным именем файла
func (s *Service) Create(ctx context.Context, d Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	// координаты проверяем до загрузки файла
	if _, err := d.ToPayload(""); err != nil {
		return err
	}

	if err := s.guard.Acquire(); err != nil {
		return err
	}
	defer s.guard.Release()

	filename, err := s.uploader.Upload(ctx, d.File)
	if err != nil {
		return fmt.Errorf("upload template file: %w", err)
	}
	if filename == "" {
		return media.ErrEmptyFilename
	}

	payload, err := d.ToPayload(filename)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, payload); err != nil {
		return fmt.Errorf("create template: %w", err)
	}

	s.log.Info("template created", slog.String("name", payload.Name), slog.String("file", filename))
	return nil
}

// Preview возвращает ссылку на файл шаблона
func (s *Service) Preview(t Template) string {
	return s.urls.Template(t.File)
}

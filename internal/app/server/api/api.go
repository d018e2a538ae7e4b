// JSON API поверх тех же редакторов, что и у панели:
//
// GET    /api/v1/health          # Проверка живости (публичный)
// GET    /api/v1/templates       # Страница шаблонов (x-api-key)
// POST   /api/v1/templates       # Создать шаблон (x-api-key)
// GET    /api/v1/form-control    # Настройки формы (x-api-key)
// PUT    /api/v1/form-control    # Изменить и сохранить форму (x-api-key)
// GET    /api/v1/slides          # Слайды карусели (x-api-key)
// PUT    /api/v1/slides          # Заменить и сохранить слайды (x-api-key)
// GET    /api/v1/events          # События (x-api-key)
// PUT    /api/v1/events          # Изменить и сохранить события (x-api-key)
// DELETE /api/v1/events/{id}     # Удалить событие (x-api-key)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server/api/http/events"
	"dayadmin/internal/app/server/api/http/formcontrol"
	healthAPI "dayadmin/internal/app/server/api/http/health"
	"dayadmin/internal/app/server/api/http/middleware"
	"dayadmin/internal/app/server/api/http/middleware/auth"
	"dayadmin/internal/app/server/api/http/middleware/logger"
	"dayadmin/internal/app/server/api/http/slides"
	"dayadmin/internal/app/server/api/http/templates"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/template"
)

const Version = "1.0.0"

type Handlers struct {
	Health      *healthAPI.Handler
	Templates   *templates.Handler
	FormControl *formcontrol.Handler
	Slides      *slides.Handler
	Events      *events.Handler
}

// New регистрирует все операции JSON API на роутере
func New(router chi.Router, remoteBase string, factory workspace.Factory, log *slog.Logger) huma.API {
	config := huma.DefaultConfig("dayadmin API", Version)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"apiKey": {Type: "apiKey", In: "header", Name: auth.HeaderAPIKey},
	}

	API := humachi.New(router, config)

	h := handlers(remoteBase, factory, log)
	h.Health.SetupRoutes(API)
	h.Templates.SetupRoutes(API)
	h.FormControl.SetupRoutes(API)
	h.Slides.SetupRoutes(API)
	h.Events.SetupRoutes(API)

	return API
}

func handlers(remoteBase string, factory workspace.Factory, log *slog.Logger) *Handlers {
	authMW := auth.New(log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(Version, remoteBase, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	templatesHandler := templates.NewHandler(func() (template.Servicer, error) {
		ws, err := factory()
		if err != nil {
			return nil, err
		}
		return ws.Templates, nil
	}, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	formHandler := formcontrol.NewHandler(func() (formcontrol.Editor, error) {
		ws, err := factory()
		if err != nil {
			return nil, err
		}
		return ws.Form, nil
	}, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	slidesHandler := slides.NewHandler(func() (slides.Editor, error) {
		ws, err := factory()
		if err != nil {
			return nil, err
		}
		return ws.Slides, nil
	}, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	eventsHandler := events.NewHandler(func() (events.Editor, error) {
		ws, err := factory()
		if err != nil {
			return nil, err
		}
		return ws.Events, nil
	}, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:      healthHandler,
		Templates:   templatesHandler,
		FormControl: formHandler,
		Slides:      slidesHandler,
		Events:      eventsHandler,
	}
}

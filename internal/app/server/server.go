package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server/api"
	"dayadmin/internal/app/server/config"
	"dayadmin/internal/app/server/web"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/infrastructure/crypto"
	"dayadmin/internal/infrastructure/remote"
	"dayadmin/internal/infrastructure/storage/sqlite"
)

// попыток входа в минуту с одного адреса
const loginLimit = 10

// App собирает панель и JSON API на одном роутере
type App struct {
	config  *config.Config
	log     *slog.Logger
	storage *sqlite.Storage
	handler http.Handler
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	keys, err := crypto.DeriveKeys(cfg.Server.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("derive keys: %w", err)
	}
	sealer, err := crypto.NewSealer(keys.Session)
	if err != nil {
		return nil, fmt.Errorf("init sealer: %w", err)
	}

	tmpl, err := web.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	factory := workspace.NewFactory(cfg.Remote, remote.NewClient(cfg.Remote, log), log)
	// политики пакетов проверяются при первой сборке
	if _, err := factory(); err != nil {
		return nil, fmt.Errorf("init editors: %w", err)
	}

	storage, err := sqlite.New(cfg.DB.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sessions := session.NewService(sqlite.NewSessionRepository(storage, sealer, log), log)
	workspaces := web.NewWorkspaces(factory, sqlite.NewDraftRepository(storage), log)
	dashboard := web.NewServer(sessions, workspaces, tmpl, web.Options{
		SecureCookies: cfg.Server.SecureCookies,
		CSRFKey:       keys.CSRF,
		LoginLimit:    loginLimit,
	}, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(cfg.Server.RateLimit, time.Minute))

	api.New(r, cfg.Remote.BaseURL, factory, log)
	dashboard.Register(r)

	return &App{
		config:  cfg,
		log:     log.With(slog.String("component", "server")),
		storage: storage,
		handler: r,
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Run слушает адрес из конфигурации до отмены ctx, затем мягко останавливает сервер
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.Server.RunAddress,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started",
			slog.String("address", srv.Addr),
			slog.String("remote", a.config.Remote.BaseURL),
			slog.String("env", a.config.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

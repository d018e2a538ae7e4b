package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	gosync "sync"

	"golang.org/x/exp/slog"

	"dayadmin/internal/app/client/config"
	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/infrastructure/crypto"
	"dayadmin/internal/infrastructure/remote"
	"dayadmin/internal/infrastructure/storage/sqlite"
)

var ErrSessionExpired = errors.New("ключ отклонен сервером, выполните вход заново: dayadmin auth login")

type App struct {
	config    *config.Config
	log       *slog.Logger
	storage   *sqlite.Storage
	sessions  *session.Service
	drafts    *sqlite.DraftRepository
	workspace *workspace.Workspace
	mu        gosync.Mutex
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	key, err := crypto.LoadOrCreateKey(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки ключа: %w", err)
	}
	sealer, err := crypto.NewSealer(key)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации шифрования: %w", err)
	}

	storage, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия локальной базы: %w", err)
	}

	ws, err := workspace.New(cfg.Remote, remote.NewClient(cfg.Remote, log), log)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("ошибка инициализации редакторов: %w", err)
	}

	return &App{
		config:    cfg,
		log:       log,
		storage:   storage,
		sessions:  session.NewService(sqlite.NewSessionRepository(storage, sealer, log), log),
		drafts:    sqlite.NewDraftRepository(storage),
		workspace: ws,
	}, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

func (a *App) Config() *config.Config {
	return a.config
}

// Login открывает сессию с общим секретом. Предыдущая сессия закрывается.
func (a *App) Login(ctx context.Context, secret string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	token, err := a.sessions.Login(ctx, secret)
	if err != nil {
		return err
	}

	// старую сессию закрываем только после успешного входа
	if old, err := a.GetToken(); err == nil && old != token {
		if err := a.sessions.Logout(ctx, old); err != nil {
			a.log.Warn("Не удалось закрыть предыдущую сессию", slog.Any("error", err))
		}
	}
	return a.SaveToken(token)
}

// Logout закрывает сессию вместе с локальными черновиками
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	token, err := a.GetToken()
	if err != nil {
		return a.ClearToken()
	}
	if err := a.sessions.Logout(ctx, token); err != nil {
		return err
	}
	return a.ClearToken()
}

// Session возвращает текущую сессию
func (a *App) Session(ctx context.Context) (*session.Session, error) {
	return a.current(ctx)
}

func (a *App) current(ctx context.Context) (*session.Session, error) {
	token, err := a.GetToken()
	if err != nil {
		return nil, session.ErrNotAuthenticated
	}
	return a.sessions.Current(ctx, token)
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("токен не найден. Выполните вход: dayadmin auth login")
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return strings.TrimSpace(string(tokenBytes)), nil
}

// SaveToken сохраняет токен сессии
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	return nil
}

// ClearToken удаляет токен
func (a *App) ClearToken() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	return nil
}

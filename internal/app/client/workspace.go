package client

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/infrastructure/storage/sqlite"
)

// Run выполняет fn в аутентифицированном контексте без работы с черновиками
func (a *App) Run(ctx context.Context, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	sess, err := a.current(ctx)
	if err != nil {
		return err
	}
	return a.handle(ctx, fn(session.WithSession(ctx, sess), a.workspace))
}

// Screen восстанавливает черновик экрана (или загружает его с сервера),
// выполняет fn и сохраняет снимок черновика обратно.
func (a *App) Screen(ctx context.Context, screen workspace.Screen, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	return a.withScreen(ctx, screen, true, fn)
}

// Pull отбрасывает локальный черновик экрана и перечитывает его с сервера
func (a *App) Pull(ctx context.Context, screen workspace.Screen) error {
	return a.withScreen(ctx, screen, false, func(ctx context.Context, ws *workspace.Workspace) error {
		editor, err := ws.Editor(screen)
		if err != nil {
			return err
		}
		return editor.Load(ctx)
	})
}

func (a *App) withScreen(ctx context.Context, screen workspace.Screen, restore bool, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	sess, err := a.current(ctx)
	if err != nil {
		return err
	}
	ctx = session.WithSession(ctx, sess)

	editor, err := a.workspace.Editor(screen)
	if err != nil {
		return err
	}

	if restore {
		if err := a.restore(ctx, sess.ID, screen, editor); err != nil {
			return a.handle(ctx, err)
		}
	}

	runErr := fn(ctx, a.workspace)

	if err := a.persist(ctx, sess.ID, screen, editor); err != nil {
		a.log.Warn("Не удалось сохранить черновик", slog.String("screen", string(screen)), slog.Any("error", err))
	}

	return a.handle(ctx, runErr)
}

func (a *App) restore(ctx context.Context, sessionID string, screen workspace.Screen, editor workspace.Editor) error {
	data, err := a.drafts.Load(ctx, sessionID, string(screen))
	if errors.Is(err, sqlite.ErrDraftNotFound) {
		return editor.Load(ctx)
	}
	if err != nil {
		return err
	}
	if err := editor.RestoreSnapshot(data); err != nil {
		a.log.Warn("Черновик поврежден, загружаем с сервера", slog.String("screen", string(screen)), slog.Any("error", err))
		return editor.Load(ctx)
	}
	return nil
}

func (a *App) persist(ctx context.Context, sessionID string, screen workspace.Screen, editor workspace.Editor) error {
	data, err := editor.Snapshot()
	if err != nil {
		return err
	}
	return a.drafts.Save(ctx, sessionID, string(screen), data)
}

// handle закрывает сессию, если сервер отклонил ключ
func (a *App) handle(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, session.ErrUnauthorized) {
		return err
	}
	if lerr := a.Logout(ctx); lerr != nil {
		a.log.Warn("Не удалось закрыть сессию", slog.Any("error", lerr))
	}
	return errors.Join(ErrSessionExpired, err)
}

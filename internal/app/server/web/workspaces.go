package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/infrastructure/storage/sqlite"
)

// DraftStore хранит снимки черновиков экранов между перезапусками сервера
type DraftStore interface {
	Save(ctx context.Context, sessionID, screen string, payload []byte) error
	Load(ctx context.Context, sessionID, screen string) ([]byte, error)
}

// неиспользуемые наборы редакторов выгружаются, черновики остаются в базе
const slotIdle = 24 * time.Hour

type slot struct {
	mu    sync.Mutex
	ws    *workspace.Workspace
	ready map[workspace.Screen]bool
	used  time.Time
}

// Workspaces - редакторы панели, по одному набору на сессию.
// Действия одной сессии выполняются по очереди.
type Workspaces struct {
	factory workspace.Factory
	drafts  DraftStore
	idle    time.Duration
	now     func() time.Time
	log     *slog.Logger

	mu    sync.Mutex
	slots map[string]*slot
}

// NewWorkspaces создает хранилище редакторов панели
func NewWorkspaces(factory workspace.Factory, drafts DraftStore, log *slog.Logger) *Workspaces {
	return &Workspaces{
		factory: factory,
		drafts:  drafts,
		idle:    slotIdle,
		now:     time.Now,
		log:     log.With(slog.String("component", "workspaces")),
		slots:   make(map[string]*slot),
	}
}

func (w *Workspaces) get(sessionID string) (*slot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.evictIdle(now)

	if s, ok := w.slots[sessionID]; ok {
		s.used = now
		return s, nil
	}
	ws, err := w.factory()
	if err != nil {
		return nil, err
	}
	s := &slot{ws: ws, ready: make(map[workspace.Screen]bool), used: now}
	w.slots[sessionID] = s
	return s, nil
}

// evictIdle вызывается под w.mu
func (w *Workspaces) evictIdle(now time.Time) {
	for id, s := range w.slots {
		if now.Sub(s.used) > w.idle {
			delete(w.slots, id)
			w.log.Debug("idle workspace evicted")
		}
	}
}

// Run выполняет fn без состояния экрана, например для списка шаблонов
func (w *Workspaces) Run(ctx context.Context, sessionID string, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	s, err := w.get(sessionID)
	if err != nil {
		return err
	}
	return fn(ctx, s.ws)
}

// Screen при первом обращении восстанавливает черновик экрана или загружает его,
// затем выполняет fn и сохраняет снимок.
func (w *Workspaces) Screen(ctx context.Context, sessionID string, screen workspace.Screen, fn func(ctx context.Context, ws *workspace.Workspace) error) error {
	s, err := w.get(sessionID)
	if err != nil {
		return err
	}
	editor, err := s.ws.Editor(screen)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready[screen] {
		if err := w.restore(ctx, sessionID, screen, editor); err != nil {
			return err
		}
		s.ready[screen] = true
	}

	runErr := fn(ctx, s.ws)

	data, err := editor.Snapshot()
	if err == nil {
		err = w.drafts.Save(ctx, sessionID, string(screen), data)
	}
	if err != nil {
		w.log.Warn("draft not persisted", slog.String("screen", string(screen)), slog.Any("error", err))
	}
	return runErr
}

func (w *Workspaces) restore(ctx context.Context, sessionID string, screen workspace.Screen, editor workspace.Editor) error {
	data, err := w.drafts.Load(ctx, sessionID, string(screen))
	switch {
	case errors.Is(err, sqlite.ErrDraftNotFound):
		return editor.Load(ctx)
	case err != nil:
		return err
	}
	if err := editor.RestoreSnapshot(data); err != nil {
		w.log.Warn("broken draft, loading from remote", slog.String("screen", string(screen)), slog.Any("error", err))
		return editor.Load(ctx)
	}
	return nil
}

// Drop забывает редакторы сессии
func (w *Workspaces) Drop(sessionID string) {
	w.mu.Lock()
	delete(w.slots, sessionID)
	w.mu.Unlock()
}

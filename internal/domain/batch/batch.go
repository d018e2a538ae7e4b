package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSaveInProgress = errors.New("save already in progress")
	ErrUnknownPolicy  = errors.New("unknown batch policy")
	ErrReload         = errors.New("saved, but reload failed")
)

// Policy определяет, как отправляется пакет записей одного экрана
type Policy string

const (
	// Concurrent - записи отправляются параллельно, сбой останавливает очередь, начатые завершаются
	Concurrent Policy = "concurrent"
	// Sequential - записи отправляются по очереди до первого сбоя
	Sequential Policy = "sequential"
)

// ParsePolicy разбирает политику из конфигурации
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case Concurrent, Sequential:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Runner выполняет пакет по выбранной политике
type Runner struct {
	policy Policy
	limit  int
	log    *slog.Logger
}

// NewRunner создает исполнитель пакета, limit ограничивает параллельные отправки
func NewRunner(policy Policy, limit int, log *slog.Logger) *Runner {
	if limit <= 0 {
		limit = 1
	}
	return &Runner{
		policy: policy,
		limit:  limit,
		log:    log,
	}
}

// Policy возвращает политику исполнителя
func (r *Runner) Policy() Policy {
	return r.policy
}

// Run вызывает fn для индексов [0, n). Возвращает первую ошибку.
func (r *Runner) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if r.policy == Sequential {
		return r.runSequential(ctx, n, fn)
	}
	return r.runConcurrent(ctx, n, fn)
}

func (r *Runner) runSequential(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, i); err != nil {
			r.log.Debug("sequential batch stopped", slog.Int("index", i), slog.Any("error", err))
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// runConcurrent отправляет записи параллельно не более limit за раз.
// После первого сбоя записи из очереди не отправляются, уже начатые завершаются.
func (r *Runner) runConcurrent(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	// errgroup.WithContext не используется: начатые записи не отменяются при сбое соседней
	var (
		g      errgroup.Group
		failed atomic.Bool
	)
	g.SetLimit(r.limit)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if failed.Load() {
				return nil
			}
			if err := fn(ctx, i); err != nil {
				failed.Store(true)
				r.log.Debug("concurrent batch record failed", slog.Int("index", i), slog.Any("error", err))
				return fmt.Errorf("record %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Guard не дает запустить второе сохранение, пока идет первое
type Guard struct {
	mu   sync.Mutex
	busy bool
}

// Acquire занимает сохранение или возвращает ErrSaveInProgress
func (g *Guard) Acquire() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy {
		return ErrSaveInProgress
	}
	g.busy = true
	return nil
}

// Release освобождает сохранение
func (g *Guard) Release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

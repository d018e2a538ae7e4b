package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("concurrent")
	require.NoError(t, err)
	assert.Equal(t, Concurrent, p)

	p, err = ParsePolicy("sequential")
	require.NoError(t, err)
	assert.Equal(t, Sequential, p)

	_, err = ParsePolicy("parallel")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestRunner_SequentialStopsOnFirstFailure(t *testing.T) {
	r := NewRunner(Sequential, 1, slog.Default())
	boom := errors.New("boom")

	var visited []int
	err := r.Run(context.Background(), 5, func(_ context.Context, i int) error {
		visited = append(visited, i)
		if i == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 1, 2}, visited)
}

func TestRunner_ConcurrentSkipsQueuedAfterFailure(t *testing.T) {
	r := NewRunner(Concurrent, 1, slog.Default())
	boom := errors.New("boom")

	var mu sync.Mutex
	var visited []int
	err := r.Run(context.Background(), 3, func(_ context.Context, i int) error {
		mu.Lock()
		visited = append(visited, i)
		mu.Unlock()
		if i == 0 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0}, visited)
}

func TestRunner_ConcurrentInFlightSiblingCompletes(t *testing.T) {
	r := NewRunner(Concurrent, 2, slog.Default())
	boom := errors.New("boom")

	started := make(chan struct{})
	failed := make(chan struct{})
	var sibling, queued atomic.Bool

	err := r.Run(context.Background(), 3, func(_ context.Context, i int) error {
		switch i {
		case 0:
			<-started
			close(failed)
			return boom
		case 1:
			close(started)
			<-failed
			// даем упавшей записи отметить сбой до освобождения слота
			time.Sleep(50 * time.Millisecond)
			sibling.Store(true)
			return nil
		default:
			queued.Store(true)
			return nil
		}
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, sibling.Load())
	assert.False(t, queued.Load())
}

func TestRunner_ConcurrentRespectsLimit(t *testing.T) {
	r := NewRunner(Concurrent, 2, slog.Default())

	var current, peak int32
	err := r.Run(context.Background(), 10, func(_ context.Context, _ int) error {
		n := atomic.AddInt32(&current, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&current, -1)
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestRunner_EmptyBatch(t *testing.T) {
	for _, p := range []Policy{Concurrent, Sequential} {
		r := NewRunner(p, 0, slog.Default())
		assert.NoError(t, r.Run(context.Background(), 0, func(context.Context, int) error {
			return errors.New("never called")
		}))
	}
}

func TestGuard(t *testing.T) {
	var g Guard

	require.NoError(t, g.Acquire())
	assert.ErrorIs(t, g.Acquire(), ErrSaveInProgress)

	g.Release()
	assert.NoError(t, g.Acquire())
}

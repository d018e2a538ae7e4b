package workspace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dayadmin/internal/config"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/infrastructure/remote"
)

func testConfig(url string) config.Remote {
	return config.Remote{
		BaseURL:        url,
		RequestTimeout: 5 * time.Second,
		PageSize:       6,
		SlideBatch:     config.BatchConcurrent,
		EventBatch:     config.BatchSequential,
		Concurrency:    2,
		Location:       time.UTC,
	}
}

func TestNew_InvalidPolicy(t *testing.T) {
	cfg := testConfig("https://api.test")
	cfg.SlideBatch = "parallel"

	_, err := New(cfg, remote.NewClient(cfg, slog.Default()), slog.Default())
	assert.Error(t, err)
}

func TestWorkspace_ScreensAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/day-template/get-slide":
			_, _ = w.Write([]byte(`[{"_id":"s1","heading":"One","order":0,"align":"left"}]`))
		case "/day-template/get-events":
			_, _ = w.Write([]byte(`[{"_id":"e1","heading":"Yoga","eventDate":"2024-05-01T03:30:00.000Z"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	ws, err := New(cfg, remote.NewClient(cfg, slog.Default()), slog.Default())
	require.NoError(t, err)

	ctx := session.WithSession(context.Background(), &session.Session{Credential: "k", Authenticated: true})

	slides, err := ws.Editor(ScreenSlides)
	require.NoError(t, err)
	require.NoError(t, slides.Load(ctx))

	assert.Len(t, ws.Slides.Drafts(), 1)
	assert.Empty(t, ws.Events.Drafts())

	events, err := ws.Editor(ScreenEvents)
	require.NoError(t, err)
	require.NoError(t, events.Load(ctx))
	assert.Equal(t, "03:30", ws.Events.Drafts()[0].Time)

	_, err = ws.Editor(Screen("shell"))
	assert.ErrorIs(t, err, ErrUnknownScreen)
}

func TestFactory_BuildsFreshWorkspace(t *testing.T) {
	cfg := testConfig("https://api.test")
	factory := NewFactory(cfg, remote.NewClient(cfg, slog.Default()), slog.Default())

	first, err := factory()
	require.NoError(t, err)
	second, err := factory()
	require.NoError(t, err)

	assert.NotSame(t, first.Slides, second.Slides)
	assert.NotSame(t, first.Events, second.Events)
}

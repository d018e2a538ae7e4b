package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dayadmin/internal/config"
	"dayadmin/internal/domain/event"
	"dayadmin/internal/domain/formcontrol"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/domain/slide"
	"dayadmin/internal/domain/template"
)

const testKey = "secret-key"

func authCtx() context.Context {
	return session.WithSession(context.Background(), &session.Session{Credential: testKey, Authenticated: true})
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.Remote{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}, slog.Default())
}

func TestClient_SendsCredential(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testKey, r.Header.Get("x-api-key"))
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/day-template/get-template", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"t1","name":"A","radioButtonText":"a","file":"a.png","nameCoordinate":{"x":1,"y":2},"dateTimeCoordinate":{"x":3,"y":4}}]`))
	})

	list, err := NewTemplateRepository(c).List(authCtx())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, template.Coordinate{X: 3, Y: 4}, list[0].DateTimeCoordinate)
}

func TestClient_MissingCredential(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := NewSlideRepository(c).List(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	assert.False(t, called)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: session.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"bad key"}`, wantErr: session.ErrUnauthorized},
		{name: "error field", status: http.StatusBadRequest, body: `{"error":"heading required"}`, wantErr: ErrStatus, wantMsg: "heading required"},
		{name: "message field", status: http.StatusNotFound, body: `{"message":"no such event"}`, wantErr: ErrStatus, wantMsg: "no such event"},
		{name: "plain text", status: http.StatusInternalServerError, body: `boom`, wantErr: ErrStatus, wantMsg: "status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := NewEventRepository(c).Delete(authCtx(), "e1")
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestClient_MalformedBodyTreatedAsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	list, err := NewEventRepository(c).List(authCtx())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFormControlRepository_GetNull(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/day-template/get-form-control", r.URL.Path)
		_, _ = w.Write([]byte(`null`))
	})

	got, err := NewFormControlRepository(c).Get(authCtx())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFormControlRepository_Routes(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		var p formcontrol.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.NotNil(t, p.EventRadioBtns)
	})

	repo := NewFormControlRepository(c)
	require.NoError(t, repo.Create(authCtx(), formcontrol.Payload{EventRadioBtns: []string{}}))
	require.NoError(t, repo.Update(authCtx(), formcontrol.Payload{ID: "f1", EventRadioBtns: []string{"t1"}}))

	assert.Equal(t, []string{
		"POST /day-template/create-form-control",
		"PATCH /day-template/update-from-control",
	}, seen)
}

func TestSlideRepository_Routes(t *testing.T) {
	var seen []string
	var bodies []map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
	})

	repo := NewSlideRepository(c)
	require.NoError(t, repo.Create(authCtx(), slide.Slide{Heading: "New", Align: slide.AlignLeft}))
	require.NoError(t, repo.Update(authCtx(), slide.Slide{ID: "s1", Order: 2, Align: slide.AlignRight}))

	assert.Equal(t, []string{
		"POST /day-template/add-slide",
		"PATCH /day-template/update-slider",
	}, seen)
	assert.NotContains(t, bodies[0], "_id")
	assert.Equal(t, "s1", bodies[1]["_id"])
	assert.Equal(t, float64(2), bodies[1]["order"])
}

func TestEventRepository_Routes(t *testing.T) {
	var seen []string
	var deleteBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&deleteBody))
		}
	})

	repo := NewEventRepository(c)
	require.NoError(t, repo.Create(authCtx(), event.Event{Heading: "A", EventDate: "2024-05-01T03:30:00.000Z"}))
	require.NoError(t, repo.Update(authCtx(), event.Event{ID: "e1"}))
	require.NoError(t, repo.Delete(authCtx(), "e1"))

	assert.Equal(t, []string{
		"POST /day-template/create-event",
		"PATCH /day-template/update-event",
		"DELETE /day-template/delete-event",
	}, seen)
	assert.Equal(t, map[string]string{"_id": "e1"}, deleteBody)
}

func TestUploader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/day-template/upload/local", r.URL.Path)
		assert.Equal(t, testKey, r.Header.Get("x-api-key"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)

		assert.Equal(t, "photo.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		assert.Equal(t, []byte("png-bytes"), data)
		_, _ = w.Write([]byte(`{"filename":"1700-photo.png"}`))
	})

	name, err := NewLocalUploader(c).Upload(authCtx(), &media.File{Name: "photo.png", ContentType: "image/png", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "1700-photo.png", name)
}

func TestUploader_NoFilename(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/day-template/upload/template", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := NewTemplateUploader(c).Upload(authCtx(), &media.File{Name: "t.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})
	assert.ErrorIs(t, err, media.ErrEmptyFilename)
}

func TestUploader_EmptyFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})

	_, err := NewLocalUploader(c).Upload(authCtx(), &media.File{Name: "x.png"})
	assert.ErrorIs(t, err, media.ErrEmptyFile)
}

func TestClient_URLs(t *testing.T) {
	c := NewClient(config.Remote{BaseURL: "https://api.test"}, slog.Default())
	assert.Equal(t, "https://api.test/static/a.png", c.URLs().Static("a.png"))
}

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/session"
)

// expiredSessions не знает ни одного токена
type expiredSessions struct{}

func (expiredSessions) Login(context.Context, string) (string, error) {
	return "", session.ErrEmptyCredential
}

func (expiredSessions) Current(context.Context, string) (*session.Session, error) {
	return nil, session.ErrNotAuthenticated
}

func (expiredSessions) Logout(context.Context, string) error {
	return nil
}

func TestRequireAuth_DropsWorkspaceOfExpiredSession(t *testing.T) {
	workspaces := NewWorkspaces(func() (*workspace.Workspace, error) {
		return &workspace.Workspace{}, nil
	}, nil, slog.Default())
	_, err := workspaces.get(session.HashToken("stale-token"))
	require.NoError(t, err)

	s := NewServer(expiredSessions{}, workspaces, nil, Options{}, slog.Default())
	handler := s.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/carousel-control", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "stale-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, workspaces.slots)
}

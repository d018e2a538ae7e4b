package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/session"
)

type output struct {
	Body struct {
		Credential string `json:"credential"`
	}
}

func setup(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Middlewares: huma.Middlewares{New(slog.Default()).Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*output, error) {
		out := &output{}
		key, err := session.CredentialFromContext(ctx)
		if err != nil {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		out.Body.Credential = key
		return out, nil
	})
	return api
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		headers    []any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing key",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"error":"Unauthorized"`,
		},
		{
			name:       "blank key",
			headers:    []any{"x-api-key:   "},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "key forwarded to handler",
			headers:    []any{"x-api-key: secret"},
			wantStatus: http.StatusOK,
			wantBody:   `"credential":"secret"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setup(t)

			resp := api.Get("/whoami", tt.headers...)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

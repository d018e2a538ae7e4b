package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/event"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/domain/slide"
	"dayadmin/internal/domain/template"
	"dayadmin/internal/infrastructure/remote"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no session", session.ErrNotAuthenticated, http.StatusUnauthorized},
		{"rejected key", fmt.Errorf("load slides: %w", session.ErrUnauthorized), http.StatusUnauthorized},
		{"overlapping save", batch.ErrSaveInProgress, http.StatusConflict},
		{"missing template fields", template.ErrMissingFields, http.StatusBadRequest},
		{"bad align", fmt.Errorf("slide 2: %w", slide.ErrInvalidAlign), http.StatusBadRequest},
		{"bad date", event.ErrInvalidDateTime, http.StatusBadRequest},
		{"empty file", media.ErrEmptyFile, http.StatusBadRequest},
		{"remote status", fmt.Errorf("%w: 500 boom", remote.ErrStatus), http.StatusBadGateway},
		{"reload failed", fmt.Errorf("%w: offline", batch.ErrReload), http.StatusBadGateway},
		{"network", &url.Error{Op: "Get", URL: "https://api.test", Err: errors.New("refused")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := From(slog.Default(), tt.err)

			var se huma.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.GetStatus())
		})
	}
}

func TestFrom_Nil(t *testing.T) {
	assert.NoError(t, From(slog.Default(), nil))
}

package health

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_healthCheck(t *testing.T) {
	handler := NewHandler("1.2.3", "https://api.test", slog.Default(), huma.Middlewares{})

	output, err := handler.healthCheck(context.Background(), &Input{})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "OK", output.Body.Status)
	assert.Equal(t, "1.2.3", output.Body.Version)
	assert.Equal(t, "https://api.test", output.Body.Remote)
}

func TestHandler_Route(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler("dev", "https://api.test", slog.Default(), nil).SetupRoutes(api)

	resp := api.Get("/api/v1/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"OK"`)
}

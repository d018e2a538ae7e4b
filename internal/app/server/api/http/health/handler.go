package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	version    string
	remote     string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(version, remote string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		version:    version,
		remote:     remote,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// healthCheck не обращается к удаленному API
func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:  "OK",
			Version: h.version,
			Remote:  h.remote,
		},
	}, nil
}

package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Logger middleware для логирования запросов JSON API
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		op := ctx.Operation()

		next(ctx)

		level := slog.LevelInfo
		if ctx.Status() >= 500 {
			level = slog.LevelError
		}

		attrs := []slog.Attr{
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.URL().Path),
			slog.Int("status", ctx.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", ctx.RemoteAddr()),
		}
		if op != nil {
			attrs = append(attrs, slog.String("operation", op.OperationID))
		}

		l.log.LogAttrs(ctx.Context(), level, "HTTP request", attrs...)
	}
}

package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"dayadmin/internal/config"
	"dayadmin/internal/utils/logger/slogpretty"
)

// New создает логгер в зависимости от окружения
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal, "":
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

// WithLevel поднимает уровень логгера для CLI, где отладочный вывод нужен только с --debug
func WithLevel(env string, debug bool) *slog.Logger {
	if debug {
		return New(env)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

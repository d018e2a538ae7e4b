package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/session"
)

// HeaderAPIKey - заголовок с ключом удаленного API
const HeaderAPIKey = "x-api-key"

type Auth struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Auth {
	return &Auth{
		log: log.With(slog.String("component", "auth_middleware")),
	}
}

// Middleware кладет ключ из заголовка в сессию запроса.
// Сам ключ проверяет удаленный API при первом вызове.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		key := strings.TrimSpace(ctx.Header(HeaderAPIKey))
		if key == "" {
			a.log.Warn("missing api key", slog.String("path", ctx.URL().Path))
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")

			err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Unauthorized",
			})
			if err != nil {
				a.log.Error("json encode", slog.Any("error", err))
			}
			return
		}

		sess := &session.Session{Credential: key, Authenticated: true}
		next(huma.WithContext(ctx, session.WithSession(ctx.Context(), sess)))
	}
}

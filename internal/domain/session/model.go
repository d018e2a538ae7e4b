package session

import (
	"context"
	"time"
)

// Session - активная сессия оператора
type Session struct {
	ID            string // hex SHA-256 от токена сессии
	Credential    string // общий секрет, уходит в заголовке x-api-key
	Authenticated bool
	CreatedAt     time.Time
}

type ctxKey struct{}

// WithSession кладет сессию в контекст для слоев, которые ходят в удаленный API
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достает сессию, положенную WithSession
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}

// CredentialFromContext возвращает секрет аутентифицированной сессии
func CredentialFromContext(ctx context.Context) (string, error) {
	s, ok := FromContext(ctx)
	if !ok || !s.Authenticated || s.Credential == "" {
		return "", ErrNotAuthenticated
	}
	return s.Credential, nil
}

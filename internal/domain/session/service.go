package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Login(ctx context.Context, secret string) (string, error)
	Current(ctx context.Context, token string) (*Session, error)
	Logout(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService создает сервис сессий
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "session")),
		now:  time.Now,
	}
}

// Login сохраняет секрет и открывает сессию. Секрет на удаленном API не проверяется:
// неверный ключ выяснится при первом защищенном запросе.
func (s *Service) Login(ctx context.Context, secret string) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", ErrEmptyCredential
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	sess := &Session{
		ID:            HashToken(token),
		Credential:    secret,
		Authenticated: true,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.Debug("session opened")
	return token, nil
}

// Current возвращает сессию по токену или ErrNotAuthenticated
func (s *Service) Current(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	sess, err := s.repo.Get(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !sess.Authenticated {
		return nil, ErrNotAuthenticated
	}

	return sess, nil
}

// Logout удаляет сессию. Отсутствующая сессия ошибкой не считается.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.repo.Delete(ctx, HashToken(token)); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}

	s.log.Debug("session closed")
	return nil
}

// HashToken - ключ сессии в базе, сам токен не хранится
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

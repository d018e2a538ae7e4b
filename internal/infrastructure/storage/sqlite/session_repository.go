package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/session"
)

// Sealer шифрует секрет сессии перед записью в базу
type Sealer interface {
	Seal(plaintext []byte) (string, error)
	Open(sealed string) ([]byte, error)
}

type SessionRepository struct {
	db     *Storage
	sealer Sealer
	log    *slog.Logger
}

func NewSessionRepository(db *Storage, sealer Sealer, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		sealer: sealer,
		log:    log.With(slog.String("component", "session_repository")),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	sealed, err := r.sealer.Seal([]byte(s.Credential))
	if err != nil {
		return fmt.Errorf("seal credential: %w", err)
	}

	_, err = r.db.DB().ExecContext(ctx,
		`INSERT INTO sessions (id, credential, authenticated, created_at)
         VALUES (?, ?, ?, ?)`,
		s.ID, sealed, s.Authenticated, s.CreatedAt)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*session.Session, error) {
	var (
		s      session.Session
		sealed string
	)
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, credential, authenticated, created_at FROM sessions WHERE id = ?`,
		id).Scan(&s.ID, &sealed, &s.Authenticated, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select session: %w", err)
	}

	credential, err := r.sealer.Open(sealed)
	if err != nil {
		r.log.Warn("session credential cannot be opened", slog.Any("error", err))
		return nil, session.ErrNotFound
	}
	s.Credential = string(credential)

	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return session.ErrNotFound
	}
	return nil
}

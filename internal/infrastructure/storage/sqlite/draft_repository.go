package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository хранит снимки черновиков экранов, привязанные к сессии
type DraftRepository struct {
	db  *Storage
	now func() time.Time
}

func NewDraftRepository(db *Storage) *DraftRepository {
	return &DraftRepository{db: db, now: time.Now}
}

func (r *DraftRepository) Save(ctx context.Context, sessionID, screen string, payload []byte) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO drafts (session_id, screen, payload, updated_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT (session_id, screen) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		sessionID, screen, payload, r.now().UTC())
	if err != nil {
		return fmt.Errorf("save draft %s: %w", screen, err)
	}
	return nil
}

func (r *DraftRepository) Load(ctx context.Context, sessionID, screen string) ([]byte, error) {
	var payload []byte
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT payload FROM drafts WHERE session_id = ? AND screen = ?`,
		sessionID, screen).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %s: %w", screen, err)
	}
	return payload, nil
}

func (r *DraftRepository) Delete(ctx context.Context, sessionID, screen string) error {
	_, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM drafts WHERE session_id = ? AND screen = ?`, sessionID, screen)
	if err != nil {
		return fmt.Errorf("delete draft %s: %w", screen, err)
	}
	return nil
}

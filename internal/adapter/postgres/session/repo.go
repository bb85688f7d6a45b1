// Package session implements the study session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hangyeol/codestudy-backend/internal/adapter/postgres"
	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, active_tab, show_translation, created_at, last_seen_at`

const createSQL = `
INSERT INTO sessions (id, active_tab, show_translation, created_at, last_seen_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

const updateStateSQL = `
UPDATE sessions
SET active_tab = $2, show_translation = $3, last_seen_at = now()
WHERE id = $1
RETURNING ` + sessionColumns

const touchSQL = `
UPDATE sessions
SET last_seen_at = now()
WHERE id = $1`

const deleteIdleBeforeSQL = `
DELETE FROM sessions
WHERE last_seen_at < $1`

// Create inserts a new session and returns the persisted record.
func (r *Repo) Create(ctx context.Context, sess domain.Session) (domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := sess.CreatedAt.UTC().Truncate(time.Microsecond)
	lastSeenAt := sess.LastSeenAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		sess.ID,
		sess.ActiveTab.String(),
		sess.ShowTranslation,
		createdAt,
		lastSeenAt,
	)

	created, err := scanSession(row)
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", sess.ID)
	}

	return created, nil
}

// GetByID returns a session by primary key.
// Returns domain.ErrNotFound if the session does not exist.
func (r *Repo) GetByID(ctx context.Context, sessionID uuid.UUID) (domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, sessionID)

	sess, err := scanSession(row)
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", sessionID)
	}

	return sess, nil
}

// UpdateState persists the active tab and translation toggle, bumping
// last_seen_at. Returns domain.ErrNotFound if the session does not exist.
func (r *Repo) UpdateState(ctx context.Context, sess domain.Session) (domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateStateSQL,
		sess.ID,
		sess.ActiveTab.String(),
		sess.ShowTranslation,
	)

	updated, err := scanSession(row)
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", sess.ID)
	}

	return updated, nil
}

// Touch bumps last_seen_at for the session.
func (r *Repo) Touch(ctx context.Context, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, touchSQL, sessionID)
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	return nil
}

// DeleteIdleBefore removes sessions whose last_seen_at is older than the
// cutoff. Artifacts are removed via ON DELETE CASCADE. Returns the number
// of sessions deleted.
func (r *Repo) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteIdleBeforeSQL, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}

	return ct.RowsAffected(), nil
}

// scanSession scans a single session row from pgx.Row.
func scanSession(row pgx.Row) (domain.Session, error) {
	var (
		sess      domain.Session
		activeTab string
	)

	if err := row.Scan(&sess.ID, &activeTab, &sess.ShowTranslation, &sess.CreatedAt, &sess.LastSeenAt); err != nil {
		return domain.Session{}, err
	}

	sess.ActiveTab = domain.Feature(activeTab)
	return sess, nil
}

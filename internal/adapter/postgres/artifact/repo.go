// Package artifact implements write-behind persistence for generated
// artifacts, keyed by (session, feature). The in-memory feature state
// stays authoritative; this store only rehydrates returning sessions.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hangyeol/codestudy-backend/internal/adapter/postgres"
	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// Repo provides artifact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new artifact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Upsert stores the latest artifact for (session, feature), replacing any
// previous payload.
func (r *Repo) Upsert(ctx context.Context, sessionID uuid.UUID, a domain.Artifact) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal %s artifact: %w", a.Feature(), err)
	}

	query, args, err := qb.Insert("artifacts").
		Columns("session_id", "feature", "payload", "updated_at").
		Values(sessionID, a.Feature().String(), payload, sq.Expr("now()")).
		Suffix("ON CONFLICT (session_id, feature) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "artifact", sessionID)
	}

	return nil
}

// ListBySession returns all stored artifacts for a session, keyed by feature.
// A session with no artifacts yields an empty map.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID) (map[domain.Feature]domain.Artifact, error) {
	query, args, err := qb.Select("feature", "payload").
		From("artifacts").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "artifact", sessionID)
	}
	defer rows.Close()

	artifacts := make(map[domain.Feature]domain.Artifact)
	for rows.Next() {
		var (
			feature string
			payload []byte
		)
		if err := rows.Scan(&feature, &payload); err != nil {
			return nil, fmt.Errorf("scan artifact row: %w", err)
		}

		f, err := domain.ParseFeature(feature)
		if err != nil {
			return nil, fmt.Errorf("artifact for session %s: %w", sessionID, err)
		}

		a, err := unmarshalArtifact(f, payload)
		if err != nil {
			return nil, err
		}
		artifacts[f] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact rows: %w", err)
	}

	return artifacts, nil
}

// unmarshalArtifact decodes a stored payload into the feature's typed
// artifact and re-validates it. Rows never bypass validation on the way in,
// so a failure here means storage corruption.
func unmarshalArtifact(f domain.Feature, payload []byte) (domain.Artifact, error) {
	var artifact domain.Artifact

	switch f {
	case domain.FeatureDaily:
		var card domain.WordCard
		if err := json.Unmarshal(payload, &card); err != nil {
			return nil, fmt.Errorf("unmarshal %s artifact: %w", f, err)
		}
		artifact = card
	case domain.FeatureQuiz:
		var quiz domain.Quiz
		if err := json.Unmarshal(payload, &quiz); err != nil {
			return nil, fmt.Errorf("unmarshal %s artifact: %w", f, err)
		}
		artifact = quiz
	case domain.FeaturePlan:
		var plan domain.WeeklyPlan
		if err := json.Unmarshal(payload, &plan); err != nil {
			return nil, fmt.Errorf("unmarshal %s artifact: %w", f, err)
		}
		artifact = plan
	case domain.FeatureWatch:
		var watch domain.Watch
		if err := json.Unmarshal(payload, &watch); err != nil {
			return nil, fmt.Errorf("unmarshal %s artifact: %w", f, err)
		}
		artifact = watch
	case domain.FeatureStory:
		var story domain.Story
		if err := json.Unmarshal(payload, &story); err != nil {
			return nil, fmt.Errorf("unmarshal %s artifact: %w", f, err)
		}
		artifact = story
	default:
		return nil, fmt.Errorf("unknown feature %q", f)
	}

	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("stored %s artifact: %w", f, err)
	}

	return artifact, nil
}

package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// SeedSession inserts a fresh session row with default state (daily tab,
// translation off). Returns the filled domain.Session.
func SeedSession(t *testing.T, pool *pgxpool.Pool) domain.Session {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	sess := domain.Session{
		ID:              uuid.New(),
		ActiveTab:       domain.FeatureDaily,
		ShowTranslation: false,
		CreatedAt:       now,
		LastSeenAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, active_tab, show_translation, created_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sess.ID, sess.ActiveTab.String(), sess.ShowTranslation, sess.CreatedAt, sess.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return sess
}

// SeedSessionIdleSince inserts a session whose last_seen_at is set to the
// given time, for retention and cleanup tests.
func SeedSessionIdleSince(t *testing.T, pool *pgxpool.Pool, lastSeen time.Time) domain.Session {
	t.Helper()
	ctx := context.Background()

	sess := domain.Session{
		ID:              uuid.New(),
		ActiveTab:       domain.FeatureDaily,
		ShowTranslation: false,
		CreatedAt:       lastSeen,
		LastSeenAt:      lastSeen.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, active_tab, show_translation, created_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sess.ID, sess.ActiveTab.String(), sess.ShowTranslation, sess.CreatedAt, sess.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSessionIdleSince insert: %v", err)
	}

	return sess
}

// SeedArtifact stores one artifact for (session, feature) as its JSON payload.
func SeedArtifact(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, artifact domain.Artifact) {
	t.Helper()
	ctx := context.Background()

	payload, err := json.Marshal(artifact)
	if err != nil {
		t.Fatalf("testhelper: SeedArtifact marshal: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO artifacts (session_id, feature, payload, updated_at)
		 VALUES ($1, $2, $3, now())`,
		sessionID, artifact.Feature().String(), payload,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArtifact insert: %v", err)
	}
}

// ValidWordCard returns a WordCard that passes validation, for seeding.
func ValidWordCard() domain.WordCard {
	return domain.WordCard{
		Term:    "refactor",
		Meaning: domain.BilingualText{EN: "restructure code without changing behavior", KR: "동작을 바꾸지 않고 코드 구조를 개선하다"},
		Example: domain.BilingualText{EN: "We refactored the parser last week.", KR: "지난주에 파서를 리팩터링했다."},
		Tip:     domain.BilingualText{EN: "Refactor in small steps.", KR: "작은 단계로 리팩터링하세요."},
	}
}

// ValidQuiz returns a Quiz that passes validation, for seeding.
func ValidQuiz() domain.Quiz {
	return domain.Quiz{
		Question: domain.BilingualText{EN: "What does 'idempotent' mean?", KR: "'멱등'은 무엇을 의미하나요?"},
		Options: []domain.BilingualText{
			{EN: "Runs once only", KR: "한 번만 실행됨"},
			{EN: "Same result on repeat", KR: "반복해도 같은 결과"},
			{EN: "Cannot fail", KR: "실패할 수 없음"},
			{EN: "Runs in parallel", KR: "병렬로 실행됨"},
		},
		CorrectIndex: 1,
		Explanation:  domain.BilingualText{EN: "Repeating the call changes nothing further.", KR: "호출을 반복해도 더 이상 변하지 않습니다."},
	}
}

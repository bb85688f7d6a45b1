package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/auth"
	"github.com/hangyeol/codestudy-backend/internal/domain"
	"github.com/hangyeol/codestudy-backend/internal/service/session"
	"github.com/hangyeol/codestudy-backend/internal/service/study"
	"github.com/hangyeol/codestudy-backend/internal/transport/middleware"
)

// newTestRouter wires real token validation around stub services so the
// auth boundary is exercised end to end.
func newTestRouter(t *testing.T) (http.Handler, *auth.TokenManager) {
	t.Helper()

	tokens := auth.NewTokenManager("router-test-secret-at-least-32-chars", "codestudy", time.Hour)

	sessions := &sessionServiceMock{
		createFn: func(ctx context.Context) (session.Created, error) {
			return session.Created{Token: "t", Session: domain.Session{ID: uuid.New(), ActiveTab: domain.FeatureDaily}}, nil
		},
		getFn: func(ctx context.Context, sessionID uuid.UUID) (domain.Session, error) {
			return domain.Session{ID: sessionID, ActiveTab: domain.FeatureDaily}, nil
		},
	}
	content := &studyServiceMock{
		getStateFn: func(ctx context.Context, sessionID uuid.UUID, f domain.Feature) (study.View, error) {
			return study.View{Status: domain.StatusIdle}, nil
		},
	}
	health := NewHealthHandler(&pingerStub{}, "test")

	router := NewRouter(
		health,
		NewSessionHandler(sessions, slog.Default()),
		NewContentHandler(content, slog.Default()),
		nil,
		middleware.SessionAuth(tokens),
	)
	return router, tokens
}

func TestRouter_CreateSessionIsPublic(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_ProtectedRouteWithToken(t *testing.T) {
	t.Parallel()

	router, tokens := newTestRouter(t)

	sessionID := uuid.New()
	token, err := tokens.GenerateSessionToken(sessionID)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != sessionID.String() {
		t.Errorf("session id: got=%s, want=%s", resp.ID, sessionID)
	}
}

func TestRouter_FeaturePathValue(t *testing.T) {
	t.Parallel()

	router, tokens := newTestRouter(t)

	token, err := tokens.GenerateSessionToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/features/plan", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Feature string `json:"feature"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Feature != "plan" {
		t.Errorf("feature: got=%s, want=plan", resp.Feature)
	}
}

func TestRouter_SpeechDisabled(t *testing.T) {
	t.Parallel()

	router, tokens := newTestRouter(t)

	token, err := tokens.GenerateSessionToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/speech", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 when speech is disabled, got %d", rec.Code)
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, rec.Code)
		}
	}
}

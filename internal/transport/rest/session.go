package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
	"github.com/hangyeol/codestudy-backend/internal/service/session"
	"github.com/hangyeol/codestudy-backend/pkg/ctxutil"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	Create(ctx context.Context) (session.Created, error)
	Get(ctx context.Context, sessionID uuid.UUID) (domain.Session, error)
	SelectTab(ctx context.Context, sessionID uuid.UUID, tab string) (domain.Session, error)
	ToggleTranslation(ctx context.Context, sessionID uuid.UUID) (domain.Session, error)
}

// SessionHandler serves session REST endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type selectTabRequest struct {
	Tab string `json:"tab"`
}

type sessionResponse struct {
	ID              string    `json:"id"`
	ActiveTab       string    `json:"activeTab"`
	ShowTranslation bool      `json:"showTranslation"`
	CreatedAt       time.Time `json:"createdAt"`
}

type createSessionResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

// Create handles POST /api/v1/sessions. No body; the session is anonymous.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.Create(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{
		Token:   created.Token,
		Session: toSessionResponse(created.Session),
	})
}

// Get handles GET /api/v1/session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	sess, err := h.svc.Get(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// SelectTab handles POST /api/v1/session/tab.
func (h *SessionHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	var req selectTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.SelectTab(r.Context(), sessionID, req.Tab)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// ToggleTranslation handles POST /api/v1/session/translation/toggle.
func (h *SessionHandler) ToggleTranslation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	sess, err := h.svc.ToggleTranslation(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (h *SessionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toSessionResponse(sess domain.Session) sessionResponse {
	return sessionResponse{
		ID:              sess.ID.String(),
		ActiveTab:       string(sess.ActiveTab),
		ShowTranslation: sess.ShowTranslation,
		CreatedAt:       sess.CreatedAt,
	}
}

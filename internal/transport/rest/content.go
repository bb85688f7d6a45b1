package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
	"github.com/hangyeol/codestudy-backend/internal/service/study"
	"github.com/hangyeol/codestudy-backend/pkg/ctxutil"
)

// studyService defines the minimal interface needed by ContentHandler.
type studyService interface {
	GetState(ctx context.Context, sessionID uuid.UUID, f domain.Feature) (study.View, error)
	StartGeneration(ctx context.Context, sessionID uuid.UUID, f domain.Feature) (study.View, error)
	AnswerQuiz(ctx context.Context, sessionID uuid.UUID, index int) (study.AnswerResult, error)
}

// ContentHandler serves feature-content REST endpoints.
type ContentHandler struct {
	svc studyService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc studyService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type featureStateResponse struct {
	Feature       string          `json:"feature"`
	Status        string          `json:"status"`
	Artifact      domain.Artifact `json:"artifact,omitempty"`
	AnsweredIndex *int            `json:"answeredIndex,omitempty"`
}

type answerQuizRequest struct {
	Index int `json:"index"`
}

type answerQuizResponse struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correctIndex"`
}

// GetState handles GET /api/v1/features/{feature}.
func (h *ContentHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	feature, err := domain.ParseFeature(r.PathValue("feature"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := h.svc.GetState(r.Context(), sessionID, feature)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeatureStateResponse(feature, view))
}

// Generate handles POST /api/v1/features/{feature}/generate. Generation
// runs in the background; the response reports the state the client
// should render while polling.
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	feature, err := domain.ParseFeature(r.PathValue("feature"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := h.svc.StartGeneration(r.Context(), sessionID, feature)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toFeatureStateResponse(feature, view))
}

// AnswerQuiz handles POST /api/v1/features/quiz/answer.
func (h *ContentHandler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	var req answerQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.AnswerQuiz(r.Context(), sessionID, req.Index)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answerQuizResponse{
		Correct:      result.Correct,
		CorrectIndex: result.CorrectIndex,
	})
}

func (h *ContentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already answered")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toFeatureStateResponse(feature domain.Feature, view study.View) featureStateResponse {
	return featureStateResponse{
		Feature:       string(feature),
		Status:        string(view.Status),
		Artifact:      view.Artifact,
		AnsweredIndex: view.AnsweredIndex,
	}
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// speechService defines the minimal interface needed by SpeechHandler.
type speechService interface {
	Speak(ctx context.Context, text, lang string) ([]byte, error)
}

// SpeechHandler serves the text-to-speech endpoint.
type SpeechHandler struct {
	svc speechService
	log *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(svc speechService, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{svc: svc, log: logger.With("handler", "speech")}
}

type speakRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Speak handles POST /api/v1/speech. Synthesis failures are not the
// client's problem: they are logged and answered with 204 so the UI
// silently skips playback.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audio, err := h.svc.Speak(r.Context(), req.Text, req.Lang)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "speech unavailable", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio) //nolint:errcheck
}

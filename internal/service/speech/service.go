package speech

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/hangyeol/codestudy-backend/internal/config"
	"github.com/hangyeol/codestudy-backend/internal/domain"
)

type synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// Service turns study text into audio. Input problems are the caller's
// fault and reported as validation errors; provider failures are logged
// here and surface as plain errors for the transport to fail quiet on.
type Service struct {
	synth         synthesizer
	log           *slog.Logger
	maxTextLength int
}

func NewService(log *slog.Logger, synth synthesizer, cfg config.SpeechConfig) *Service {
	return &Service{
		synth:         synth,
		log:           log.With("service", "speech"),
		maxTextLength: cfg.MaxTextLength,
	}
}

// Speak synthesizes MP3 audio for the given text and language ("en" or
// "kr").
func (s *Service) Speak(ctx context.Context, text, lang string) ([]byte, error) {
	if text == "" {
		return nil, domain.NewValidationError("text", "must not be empty")
	}
	if n := utf8.RuneCountInString(text); n > s.maxTextLength {
		return nil, domain.NewValidationError("text", fmt.Sprintf("must be at most %d characters, got %d", s.maxTextLength, n))
	}
	if lang != "en" && lang != "kr" {
		return nil, domain.NewValidationError("lang", "must be \"en\" or \"kr\"")
	}

	audio, err := s.synth.Synthesize(ctx, text, lang)
	if err != nil {
		s.log.Error("speech synthesis failed", "error", err, "lang", lang, "text_len", len(text))
		return nil, fmt.Errorf("speak: %w", err)
	}
	return audio, nil
}

package speech

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/hangyeol/codestudy-backend/internal/config"
)

// GoogleSynthesizer renders study text into MP3 audio through the Google
// Cloud Text-to-Speech API. Credentials come from the ambient GCP
// environment (GOOGLE_APPLICATION_CREDENTIALS).
type GoogleSynthesizer struct {
	log     *slog.Logger
	client  *texttospeech.Client
	voices  map[string]voice
	timeout time.Duration
}

type voice struct {
	languageCode string
	name         string
}

func NewGoogleSynthesizer(ctx context.Context, log *slog.Logger, cfg config.SpeechConfig) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("texttospeech client: %w", err)
	}

	return &GoogleSynthesizer{
		log:    log.With("adapter", "google_tts"),
		client: client,
		voices: map[string]voice{
			"en": {languageCode: "en-US", name: cfg.VoiceEN},
			"kr": {languageCode: "ko-KR", name: cfg.VoiceKR},
		},
		timeout: cfg.RequestTimeout,
	}, nil
}

func (g *GoogleSynthesizer) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Synthesize converts text to MP3 audio in the requested language
// ("en" or "kr").
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	v, ok := g.voices[lang]
	if !ok {
		return nil, fmt.Errorf("no voice configured for language %q", lang)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: v.languageCode,
			Name:         v.name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(resp.AudioContent) == 0 {
		return nil, fmt.Errorf("synthesize speech: empty audio for voice %s", v.name)
	}
	return resp.AudioContent, nil
}

package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hangyeol/codestudy-backend/internal/config"
	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// Client is the external generation collaborator. One logical request per
// feature: a natural-language instruction plus the declared output shape.
// Every failure, transport or structural, wraps domain.ErrGeneration.
type Client struct {
	log       *slog.Logger
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	timeout   time.Duration
}

// NewClient creates a collaborator client from the generation config.
func NewClient(log *slog.Logger, cfg config.GenerationConfig) *Client {
	return &Client{
		log:       log,
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.RequestTimeout,
	}
}

// Generate requests one artifact for the given feature. The response is
// strictly decoded and validated; no partial artifact is ever returned.
func (c *Client) Generate(ctx context.Context, f domain.Feature) (domain.Artifact, error) {
	prompt, err := buildPrompt(f)
	if err != nil {
		return nil, failure(f, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, failure(f, fmt.Errorf("api call: %w", err))
	}

	if len(msg.Content) == 0 {
		return nil, failure(f, fmt.Errorf("empty response"))
	}

	responseText := msg.Content[0].Text

	// Extract JSON from the response (between first { and last }).
	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return nil, failure(f, err)
	}
	if !json.Valid([]byte(jsonStr)) {
		return nil, failure(f, fmt.Errorf("response does not contain valid JSON"))
	}

	artifact, err := decodeArtifact(f, []byte(jsonStr))
	if err != nil {
		return nil, failure(f, err)
	}

	c.log.Debug("artifact generated", slog.String("feature", f.String()))
	return artifact, nil
}

// failure folds any collaborator error into the single generation
// failure taxonomy.
func failure(f domain.Feature, err error) error {
	return fmt.Errorf("generate %s: %w: %w", f, domain.ErrGeneration, err)
}

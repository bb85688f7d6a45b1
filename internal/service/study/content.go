package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// GetState returns the current {status, artifact} projection for a feature.
func (s *Service) GetState(ctx context.Context, sessionID uuid.UUID, f domain.Feature) (View, error) {
	if !f.IsValid() {
		return View{}, fmt.Errorf("%w: unknown feature %q", domain.ErrValidation, f)
	}

	states, err := s.ensure(ctx, sessionID)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return states[f].view(), nil
}

// StartGeneration begins a new generation cycle for the feature and fires
// the collaborator call asynchronously. The returned view is what the
// client sees immediately: loading, except a Daily refresh over an
// existing card, which keeps showing ready until the new card lands.
func (s *Service) StartGeneration(ctx context.Context, sessionID uuid.UUID, f domain.Feature) (View, error) {
	if !f.IsValid() {
		return View{}, fmt.Errorf("%w: unknown feature %q", domain.ErrValidation, f)
	}

	states, err := s.ensure(ctx, sessionID)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	fs := states[f]
	fs.seq++
	token := fs.seq
	if f == domain.FeatureDaily && fs.artifact != nil {
		// Skeleton suppression: the old card stays on screen.
		fs.status = domain.StatusReady
	} else {
		fs.status = domain.StatusLoading
	}
	view := fs.view()
	s.mu.Unlock()

	go s.runGeneration(context.WithoutCancel(ctx), sessionID, f, token)

	return view, nil
}

// StartInitialDaily fires the single automatic Daily generation at session
// creation. A session rehydrated with a stored Daily artifact fires nothing,
// and repeat calls are no-ops.
func (s *Service) StartInitialDaily(ctx context.Context, sessionID uuid.UUID) error {
	states, err := s.ensure(ctx, sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	fs := states[domain.FeatureDaily]
	if fs.artifact != nil || fs.status != domain.StatusIdle {
		s.mu.Unlock()
		return nil
	}
	fs.seq++
	token := fs.seq
	fs.status = domain.StatusLoading
	s.mu.Unlock()

	go s.runGeneration(context.WithoutCancel(ctx), sessionID, domain.FeatureDaily, token)

	return nil
}

// runGeneration executes one collaborator call and applies the outcome if
// its token is still the highest issued one.
func (s *Service) runGeneration(ctx context.Context, sessionID uuid.UUID, f domain.Feature, token uint64) {
	artifact, err := s.gen.Generate(ctx, f)
	if err != nil {
		s.finishError(sessionID, f, token, err)
		return
	}
	s.finishReady(ctx, sessionID, f, token, artifact)
}

// finishError logs the failure and flips the state to error. Fail quiet:
// no failure detail ever reaches the rendering boundary.
func (s *Service) finishError(sessionID uuid.UUID, f domain.Feature, token uint64, err error) {
	s.log.Error("generation failed",
		slog.String("session_id", sessionID.String()),
		slog.String("feature", f.String()),
		slog.String("error", err.Error()),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	states, ok := s.states[sessionID]
	if !ok {
		return
	}
	fs := states[f]
	if token != fs.seq {
		return // superseded by a newer generate
	}
	if f == domain.FeatureDaily && fs.artifact != nil {
		// Suppressed Daily refresh: the old card stays, no error surfaces.
		return
	}
	fs.status = domain.StatusError
}

// finishReady applies a generated artifact and persists it write-behind.
func (s *Service) finishReady(ctx context.Context, sessionID uuid.UUID, f domain.Feature, token uint64, artifact domain.Artifact) {
	s.mu.Lock()
	states, ok := s.states[sessionID]
	if !ok {
		s.mu.Unlock()
		return
	}
	fs := states[f]
	if token != fs.seq {
		s.mu.Unlock()
		return // superseded by a newer generate
	}
	fs.artifact = artifact
	fs.status = domain.StatusReady
	fs.answered = nil
	s.mu.Unlock()

	// Write-behind: a persistence failure never affects the live state.
	if err := s.store.Upsert(ctx, sessionID, artifact); err != nil {
		s.log.Error("persist artifact",
			slog.String("session_id", sessionID.String()),
			slog.String("feature", f.String()),
			slog.String("error", err.Error()),
		)
	}
}

// AnswerResult reports the grading of one quiz answer.
type AnswerResult struct {
	Correct      bool
	CorrectIndex int
}

// AnswerQuiz grades the chosen option against the current quiz artifact.
// A quiz accepts exactly one answer; the lock releases when a new quiz
// artifact lands.
func (s *Service) AnswerQuiz(ctx context.Context, sessionID uuid.UUID, index int) (AnswerResult, error) {
	states, err := s.ensure(ctx, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fs := states[domain.FeatureQuiz]
	if fs.status != domain.StatusReady || fs.artifact == nil {
		return AnswerResult{}, fmt.Errorf("quiz for session %s: %w", sessionID, domain.ErrNotFound)
	}

	quiz, ok := fs.artifact.(domain.Quiz)
	if !ok {
		return AnswerResult{}, fmt.Errorf("quiz for session %s: unexpected artifact %T", sessionID, fs.artifact)
	}

	if index < 0 || index >= len(quiz.Options) {
		return AnswerResult{}, domain.NewValidationError("index",
			fmt.Sprintf("must be in [0, %d), got %d", len(quiz.Options), index))
	}
	if fs.answered != nil {
		return AnswerResult{}, fmt.Errorf("quiz already answered: %w", domain.ErrConflict)
	}

	fs.answered = &index

	return AnswerResult{
		Correct:      index == quiz.CorrectIndex,
		CorrectIndex: quiz.CorrectIndex,
	}, nil
}

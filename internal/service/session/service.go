package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, sess domain.Session) (domain.Session, error)
	GetByID(ctx context.Context, sessionID uuid.UUID) (domain.Session, error)
	UpdateState(ctx context.Context, sess domain.Session) (domain.Session, error)
	Touch(ctx context.Context, sessionID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenIssuer interface {
	GenerateSessionToken(sessionID uuid.UUID) (string, error)
}

type dailyStarter interface {
	StartInitialDaily(ctx context.Context, sessionID uuid.UUID) error
}

// Service owns the session lifecycle: anonymous creation, tab and
// translation state, and access refresh.
type Service struct {
	repo   sessionRepo
	tx     txManager
	tokens tokenIssuer
	daily  dailyStarter
	log    *slog.Logger
	now    func() time.Time
}

func NewService(log *slog.Logger, repo sessionRepo, tx txManager, tokens tokenIssuer, daily dailyStarter) *Service {
	return &Service{
		repo:   repo,
		tx:     tx,
		tokens: tokens,
		daily:  daily,
		log:    log.With("service", "session"),
		now:    time.Now,
	}
}

// Created is what a fresh session hands back to the client: the bearer
// token plus the initial session snapshot.
type Created struct {
	Token   string
	Session domain.Session
}

// Create registers a new anonymous session positioned on the Daily tab
// and kicks off the one automatic Daily generation. A failure to start
// that generation is logged and swallowed: the session itself is fine.
func (s *Service) Create(ctx context.Context) (Created, error) {
	sess := domain.NewSession(uuid.New(), s.now().UTC())

	sess, err := s.repo.Create(ctx, sess)
	if err != nil {
		return Created{}, fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokens.GenerateSessionToken(sess.ID)
	if err != nil {
		return Created{}, fmt.Errorf("issue session token: %w", err)
	}

	if err := s.daily.StartInitialDaily(ctx, sess.ID); err != nil {
		s.log.Error("start initial daily generation", "error", err, "session_id", sess.ID)
	}

	return Created{Token: token, Session: sess}, nil
}

// Get returns the current session snapshot and refreshes its last-seen
// timestamp.
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (domain.Session, error) {
	if err := s.repo.Touch(ctx, sessionID); err != nil {
		return domain.Session{}, fmt.Errorf("touch session: %w", err)
	}

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// SelectTab switches the active tab. This is pure state assignment; it
// never fetches or generates content for the target tab.
func (s *Service) SelectTab(ctx context.Context, sessionID uuid.UUID, tab string) (domain.Session, error) {
	feature, err := domain.ParseFeature(tab)
	if err != nil {
		return domain.Session{}, err
	}

	return s.updateState(ctx, sessionID, func(sess domain.Session) domain.Session {
		return sess.WithTab(feature)
	})
}

// ToggleTranslation flips the session-wide translation toggle. The flip
// is instantaneous and independent of which artifacts exist.
func (s *Service) ToggleTranslation(ctx context.Context, sessionID uuid.UUID) (domain.Session, error) {
	return s.updateState(ctx, sessionID, domain.Session.WithTranslationToggled)
}

// updateState applies a read-modify-write of the session row inside a
// transaction, so concurrent tab and toggle changes cannot overwrite each
// other's reads.
func (s *Service) updateState(ctx context.Context, sessionID uuid.UUID, apply func(domain.Session) domain.Session) (domain.Session, error) {
	var sess domain.Session
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetByID(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		sess, err = s.repo.UpdateState(ctx, apply(cur))
		if err != nil {
			return fmt.Errorf("update session state: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Package study implements the per-session content state machines: one
// request lifecycle per (session, feature), fed by the generation
// collaborator and persisted write-behind.
package study

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type generator interface {
	Generate(ctx context.Context, f domain.Feature) (domain.Artifact, error)
}

type artifactStore interface {
	Upsert(ctx context.Context, sessionID uuid.UUID, a domain.Artifact) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) (map[domain.Feature]domain.Artifact, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns the in-memory feature states. The state table is
// authoritative; the artifact store only rehydrates returning sessions.
type Service struct {
	gen   generator
	store artifactStore
	log   *slog.Logger

	mu     sync.Mutex
	states map[uuid.UUID]map[domain.Feature]*featureState
	seen   map[uuid.UUID]time.Time
	now    func() time.Time
}

// NewService creates a new study service.
func NewService(log *slog.Logger, gen generator, store artifactStore) *Service {
	return &Service{
		gen:    gen,
		store:  store,
		log:    log.With("service", "study"),
		states: make(map[uuid.UUID]map[domain.Feature]*featureState),
		seen:   make(map[uuid.UUID]time.Time),
		now:    time.Now,
	}
}

// ensure returns the session's state table, rehydrating it from stored
// artifacts on first touch. Rehydrated features surface ready immediately.
func (s *Service) ensure(ctx context.Context, sessionID uuid.UUID) (map[domain.Feature]*featureState, error) {
	s.mu.Lock()
	if st, ok := s.states[sessionID]; ok {
		s.seen[sessionID] = s.now()
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	stored, err := s.store.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Someone else may have rehydrated while we queried.
	if st, ok := s.states[sessionID]; ok {
		s.seen[sessionID] = s.now()
		return st, nil
	}

	st := make(map[domain.Feature]*featureState, len(domain.Features()))
	for _, f := range domain.Features() {
		fs := &featureState{status: domain.StatusIdle}
		if a, ok := stored[f]; ok {
			fs.status = domain.StatusReady
			fs.artifact = a
		}
		st[f] = fs
	}
	s.states[sessionID] = st
	s.seen[sessionID] = s.now()
	return st, nil
}

// Evict drops a session's in-memory state. A later request rehydrates
// from storage, finding nothing when the session was purged.
func (s *Service) Evict(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.states, sessionID)
	delete(s.seen, sessionID)
	s.mu.Unlock()
}

// EvictIdle evicts every session with no request activity for maxIdle.
// Returns the number of sessions dropped.
func (s *Service) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	idle := make([]uuid.UUID, 0)
	for id, last := range s.seen {
		if last.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	s.mu.Unlock()

	for _, id := range idle {
		s.Evict(id)
	}
	return len(idle)
}

// RunEviction sweeps idle session state on a ticker until ctx is done.
// Without it the state table grows one entry per session for the life of
// the process.
func (s *Service) RunEviction(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(maxIdle); n > 0 {
				s.log.Info("evicted idle session state", slog.Int("sessions", n))
			}
		}
	}
}

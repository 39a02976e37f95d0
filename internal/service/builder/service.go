// Package builder exposes the sentence engine to the transport layer
// as a set of anonymous sessions. Each session owns one engine; all
// mutation goes through the session lock, which keeps the engine's
// single-writer requirement true under concurrent HTTP requests.
package builder

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
	"github.com/hanbitlee/mykorean-backend/internal/sentence"
)

// MaxSessions caps the in-memory session store.
const MaxSessions = 10000

// Service manages builder sessions over one immutable vocabulary.
type Service struct {
	vocab domain.Vocabulary
	log   *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

type session struct {
	mu     sync.Mutex
	engine *sentence.Engine
}

// NewService creates a builder service. The vocabulary must already be
// validated; NewService re-runs the engine's own check to fail fast if
// it was not.
func NewService(log *slog.Logger, vocab domain.Vocabulary) (*Service, error) {
	// Probe the dataset once so a defect fails startup, not the first
	// session create.
	if _, err := sentence.NewEngine(vocab); err != nil {
		return nil, err
	}

	return &Service{
		vocab:    vocab,
		log:      log.With("service", "builder"),
		sessions: make(map[uuid.UUID]*session),
	}, nil
}

// session looks up a session by ID.
func (s *Service) session(id uuid.UUID) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

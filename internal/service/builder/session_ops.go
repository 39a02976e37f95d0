package builder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
	"github.com/hanbitlee/mykorean-backend/internal/sentence"
)

// CreateSession starts a new session positioned at the first topic and
// its first compatible noun, and returns the initial snapshot.
func (s *Service) CreateSession(ctx context.Context) (Snapshot, error) {
	engine, err := sentence.NewEngine(s.vocab)
	if err != nil {
		return Snapshot{}, err
	}

	id := uuid.New()

	s.mu.Lock()
	if len(s.sessions) >= MaxSessions {
		s.mu.Unlock()
		return Snapshot{}, domain.NewValidationError("sessions", "session limit reached")
	}
	s.sessions[id] = &session{engine: engine}
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session created", slog.String("session_id", id.String()))

	return render(id, engine.Current())
}

// DeleteSession removes a session. Unknown IDs return ErrNotFound.
func (s *Service) DeleteSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, id)

	s.log.InfoContext(ctx, "session deleted", slog.String("session_id", id.String()))
	return nil
}

// AdvanceTopic cycles the session to the next topic and returns the
// new snapshot. The noun selection resets to the first compatible noun.
func (s *Service) AdvanceTopic(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.engine.AdvanceTopic()
	return render(id, sess.engine.Current())
}

// AdvanceNoun cycles the session to the next compatible noun and
// returns the new snapshot. With one compatible noun this is a no-op
// and the snapshot is unchanged.
func (s *Service) AdvanceNoun(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.engine.AdvanceNoun()
	return render(id, sess.engine.Current())
}

// Current returns the session's snapshot without advancing anything.
func (s *Service) Current(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return render(id, sess.engine.Current())
}

// Vocabulary returns the dataset the service was started with.
func (s *Service) Vocabulary() domain.Vocabulary {
	return s.vocab
}

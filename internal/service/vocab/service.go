// Package vocab loads and verifies the vocabulary dataset at startup.
package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
	"github.com/hanbitlee/mykorean-backend/internal/hangul"
)

// Source supplies the raw dataset (file or Postgres).
type Source interface {
	GetVocabulary(ctx context.Context) (domain.Vocabulary, error)
}

// Service wraps a Source with the load-time checks the engine depends
// on. The dataset is fetched once at startup and never mutated.
type Service struct {
	src Source
	log *slog.Logger
}

// NewService creates a vocabulary service.
func NewService(log *slog.Logger, src Source) *Service {
	return &Service{
		src: src,
		log: log.With("service", "vocab"),
	}
}

// Load fetches the dataset and verifies every invariant the engine
// relies on: structural validity, a non-empty compatible set per topic,
// and a classifiable final syllable on every noun. Any defect here is
// fatal; the widget must not start with a dataset that could produce
// wrong grammar at render time.
func (s *Service) Load(ctx context.Context) (domain.Vocabulary, error) {
	v, err := s.src.GetVocabulary(ctx)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("fetch vocabulary: %w", err)
	}

	if err := v.Validate(); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("validate vocabulary: %w", err)
	}

	for i, n := range v.Nouns {
		if _, err := hangul.HasFinalConsonant(n.Korean); err != nil {
			return domain.Vocabulary{}, fmt.Errorf("nouns[%d]: %w", i, err)
		}
	}

	s.log.InfoContext(ctx, "vocabulary loaded",
		slog.Int("topics", len(v.Topics)),
		slog.Int("nouns", len(v.Nouns)),
	)

	return v, nil
}

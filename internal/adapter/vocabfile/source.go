package vocabfile

import (
	"context"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// Source adapts a vocab.json file to the vocabulary Source interface
// used by the service layer.
type Source struct {
	path string
}

// NewSource creates a file-backed vocabulary source.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// GetVocabulary reads the file. The context is unused; file reads are
// fast and happen once at startup.
func (s *Source) GetVocabulary(_ context.Context) (domain.Vocabulary, error) {
	return Load(s.path)
}

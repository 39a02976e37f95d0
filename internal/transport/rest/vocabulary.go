package rest

import (
	"net/http"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// vocabProvider exposes the loaded dataset.
type vocabProvider interface {
	Vocabulary() domain.Vocabulary
}

// VocabHandler serves the vocabulary listing endpoint.
type VocabHandler struct {
	vocab vocabProvider
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(vocab vocabProvider) *VocabHandler {
	return &VocabHandler{vocab: vocab}
}

type topicResponse struct {
	Korean     string   `json:"korean"`
	Romanized  string   `json:"romanized,omitempty"`
	English    string   `json:"english"`
	Categories []string `json:"categories,omitempty"`
}

type nounResponse struct {
	Korean    string `json:"korean"`
	Romanized string `json:"romanized,omitempty"`
	English   string `json:"english"`
	Category  string `json:"category"`
}

type vocabularyResponse struct {
	Topics []topicResponse `json:"topics"`
	Nouns  []nounResponse  `json:"nouns"`
}

// List handles GET /api/vocabulary.
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	v := h.vocab.Vocabulary()

	resp := vocabularyResponse{
		Topics: make([]topicResponse, 0, len(v.Topics)),
		Nouns:  make([]nounResponse, 0, len(v.Nouns)),
	}

	for _, t := range v.Topics {
		tr := topicResponse{
			Korean:    t.Korean,
			Romanized: t.Romanized,
			English:   t.English,
		}
		for _, c := range t.Categories {
			tr.Categories = append(tr.Categories, c.String())
		}
		resp.Topics = append(resp.Topics, tr)
	}

	for _, n := range v.Nouns {
		resp.Nouns = append(resp.Nouns, nounResponse{
			Korean:    n.Korean,
			Romanized: n.Romanized,
			English:   n.English,
			Category:  n.Category.String(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

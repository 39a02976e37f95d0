// Package vocabfile loads the vocabulary dataset from a vocab.json
// file. The schema follows the practice-hub data files: an "intro"
// object holding ordered topic and noun lists with kr/roman/en fields.
package vocabfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

type fileTopic struct {
	Korean     string   `json:"kr"`
	Romanized  string   `json:"roman"`
	English    string   `json:"en"`
	Categories []string `json:"categories,omitempty"`
}

type fileNoun struct {
	Korean    string `json:"kr"`
	Romanized string `json:"roman"`
	English   string `json:"en"`
	Category  string `json:"category"`
}

type fileVocab struct {
	Intro struct {
		Topics []fileTopic `json:"topics"`
		Nouns  []fileNoun  `json:"nouns"`
	} `json:"intro"`
}

// Load reads and validates a vocab.json file. Order of the JSON arrays
// defines the cycling order. Category tags are accepted in any case.
func Load(path string) (domain.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a vocab.json document and validates the dataset
// invariants the engine relies on.
func Parse(data []byte) (domain.Vocabulary, error) {
	var f fileVocab
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("decode vocab: %w", err)
	}

	v := domain.Vocabulary{
		Topics: make([]domain.Topic, len(f.Intro.Topics)),
		Nouns:  make([]domain.Noun, len(f.Intro.Nouns)),
	}
	for i, t := range f.Intro.Topics {
		var cats []domain.NounCategory
		if t.Categories != nil {
			cats = make([]domain.NounCategory, len(t.Categories))
			for j, c := range t.Categories {
				cats[j] = domain.NounCategory(strings.ToUpper(c))
			}
		}
		v.Topics[i] = domain.Topic{
			Korean:     t.Korean,
			Romanized:  t.Romanized,
			English:    t.English,
			Categories: cats,
		}
	}
	for i, n := range f.Intro.Nouns {
		v.Nouns[i] = domain.Noun{
			Korean:    n.Korean,
			Romanized: n.Romanized,
			English:   n.English,
			Category:  domain.NounCategory(strings.ToUpper(n.Category)),
		}
	}

	if err := v.Validate(); err != nil {
		return domain.Vocabulary{}, err
	}

	return v, nil
}

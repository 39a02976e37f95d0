package sentence

import (
	"fmt"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
	"github.com/hanbitlee/mykorean-backend/internal/hangul"
)

// Composition is the Korean rendering of a (topic, noun) pair.
type Composition struct {
	// Sentence is the full pattern sentence, e.g. "저는 학생이에요.".
	Sentence string
	// NounPhrase is the noun with its copula attached, e.g. "학생이에요".
	NounPhrase string
	// Suffix is the copula variant that was selected.
	Suffix string
	// Romanized approximates the sentence in Latin script.
	Romanized string
}

// Romanizations of the two copula variants.
const (
	romanClosed = "ieyo"
	romanOpen   = "yeyo"
)

// Compose builds the Korean sentence for a (topic, noun) pair: the
// copula is selected by the noun's final syllable, appended to the
// noun, and the result joined to the topic with a single space and a
// trailing period. Pure; the only failure mode is a noun whose final
// rune is outside the Hangul syllable block.
func Compose(topic domain.Topic, noun domain.Noun) (Composition, error) {
	suffix, err := hangul.CopulaFor(noun.Korean)
	if err != nil {
		return Composition{}, fmt.Errorf("noun %q: %w", noun.Korean, err)
	}

	nounPhrase := noun.Korean + suffix

	roman := ""
	if topic.Romanized != "" && noun.Romanized != "" {
		romanSuffix := romanClosed
		if suffix == hangul.CopulaOpen {
			romanSuffix = romanOpen
		}
		roman = topic.Romanized + " " + noun.Romanized + romanSuffix + "."
	}

	return Composition{
		Sentence:   topic.Korean + " " + nounPhrase + ".",
		NounPhrase: nounPhrase,
		Suffix:     suffix,
		Romanized:  roman,
	}, nil
}

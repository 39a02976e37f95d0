package tts

import (
	"fmt"
	"sort"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
	"github.com/hanbitlee/mykorean-backend/internal/hangul"
	"github.com/hanbitlee/mykorean-backend/internal/sentence"
)

// Texts enumerates every Korean string the widget can ask to have
// pronounced: each topic, each noun, each noun with its copula and
// case particles attached, and every composable (topic, compatible
// noun) sentence. The result is deduplicated and sorted so manifest
// filenames are stable across runs.
func Texts(v domain.Vocabulary) ([]string, error) {
	set := make(map[string]struct{})

	for _, t := range v.Topics {
		set[t.Korean] = struct{}{}
	}

	for _, n := range v.Nouns {
		set[n.Korean] = struct{}{}

		copula, err := hangul.CopulaFor(n.Korean)
		if err != nil {
			return nil, fmt.Errorf("noun %q: %w", n.Korean, err)
		}
		set[n.Korean+copula] = struct{}{}

		// Drill variants with the case particles.
		subject, err := hangul.SubjectParticleFor(n.Korean)
		if err != nil {
			return nil, fmt.Errorf("noun %q: %w", n.Korean, err)
		}
		set[n.Korean+subject] = struct{}{}

		object, err := hangul.ObjectParticleFor(n.Korean)
		if err != nil {
			return nil, fmt.Errorf("noun %q: %w", n.Korean, err)
		}
		set[n.Korean+object] = struct{}{}
	}

	for _, t := range v.Topics {
		for _, n := range v.CompatibleNouns(t) {
			comp, err := sentence.Compose(t, n)
			if err != nil {
				return nil, err
			}
			set[comp.Sentence] = struct{}{}
		}
	}

	texts := make([]string, 0, len(set))
	for text := range set {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	return texts, nil
}

package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hanbitlee/mykorean-backend/internal/sentence"
)

// Snapshot is the rendered state of a session: everything the widget
// needs to display and speak the current sentence.
type Snapshot struct {
	SessionID uuid.UUID

	TopicKorean     string
	TopicRomanized  string
	TopicEnglish    string
	NounKorean      string
	NounRomanized   string
	NounEnglish     string
	CompatibleCount int

	// Sentence is the full Korean sentence ("저는 학생이에요.").
	Sentence string
	// NounPhrase is the noun with its copula ("학생이에요"), the unit
	// the widget plays when the noun block is tapped.
	NounPhrase string
	Romanized  string
	// Gloss is the English translation.
	Gloss string
}

// render builds a Snapshot from the engine's current selection. The
// caller holds the session lock.
func render(id uuid.UUID, sel sentence.Selection) (Snapshot, error) {
	comp, err := sentence.Compose(sel.Topic, sel.Noun)
	if err != nil {
		return Snapshot{}, fmt.Errorf("compose: %w", err)
	}

	return Snapshot{
		SessionID:       id,
		TopicKorean:     sel.Topic.Korean,
		TopicRomanized:  sel.Topic.Romanized,
		TopicEnglish:    sel.Topic.English,
		NounKorean:      sel.Noun.Korean,
		NounRomanized:   sel.Noun.Romanized,
		NounEnglish:     sel.Noun.English,
		CompatibleCount: len(sel.Compatible),
		Sentence:        comp.Sentence,
		NounPhrase:      comp.NounPhrase,
		Romanized:       comp.Romanized,
		Gloss:           sentence.Gloss(sel.Topic, sel.Noun),
	}, nil
}

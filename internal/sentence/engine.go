// Package sentence implements the two-slot pattern-sentence builder:
// cycling selection over topics and compatible nouns, Korean sentence
// composition with the phonologically conditioned copula, and English
// gloss generation.
package sentence

import (
	"fmt"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// Engine owns the selection state over an immutable vocabulary. The
// noun index always points into the compatibility-filtered sequence of
// the current topic, never into the raw noun slice; the filtered view
// is recomputed on every read so a topic switch can never leave a
// stale index aliasing the wrong noun.
//
// The engine itself is not safe for concurrent use. It has exactly one
// intended writer; callers serving multiple goroutines serialize above
// it (see service/builder).
type Engine struct {
	vocab      domain.Vocabulary
	topicIndex int
	nounIndex  int
}

// Selection is the result of a read: the current topic, the current
// noun, and the full compatible sequence the noun index points into.
type Selection struct {
	TopicIndex int
	NounIndex  int
	Topic      domain.Topic
	Noun       domain.Noun
	Compatible []domain.Noun
}

// NewEngine validates the vocabulary and returns an engine positioned
// at the first topic and its first compatible noun. Dataset defects
// (including an empty compatible set for any topic) fail here, not
// during rendering.
func NewEngine(vocab domain.Vocabulary) (*Engine, error) {
	if err := vocab.Validate(); err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}
	return &Engine{vocab: vocab}, nil
}

// AdvanceTopic moves to the next topic cyclically and resets the noun
// selection to the first compatible noun.
func (e *Engine) AdvanceTopic() {
	e.topicIndex = (e.topicIndex + 1) % len(e.vocab.Topics)
	e.nounIndex = 0
}

// AdvanceNoun moves to the next compatible noun cyclically. When the
// current topic has at most one compatible noun there is nothing to
// cycle to and the call is a no-op.
func (e *Engine) AdvanceNoun() {
	compatible := e.vocab.CompatibleNouns(e.currentTopic())
	if len(compatible) <= 1 {
		return
	}
	e.nounIndex = (e.nounIndex + 1) % len(compatible)
}

// Current recomputes the compatible sequence for the current topic,
// clamps a stale noun index back to 0, and returns the selection.
// Calling it twice with no intervening advance returns identical
// results.
func (e *Engine) Current() Selection {
	topic := e.currentTopic()
	compatible := e.vocab.CompatibleNouns(topic)
	if e.nounIndex >= len(compatible) {
		e.nounIndex = 0
	}

	return Selection{
		TopicIndex: e.topicIndex,
		NounIndex:  e.nounIndex,
		Topic:      topic,
		Noun:       compatible[e.nounIndex],
		Compatible: compatible,
	}
}

// Vocabulary returns the dataset the engine was built over.
func (e *Engine) Vocabulary() domain.Vocabulary {
	return e.vocab
}

func (e *Engine) currentTopic() domain.Topic {
	return e.vocab.Topics[e.topicIndex]
}

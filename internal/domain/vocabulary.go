package domain

import (
	"fmt"
	"slices"
)

// Topic is the subject slot of the pattern sentence ("저는", "여기는", ...).
// Categories restricts which nouns may fill the predicate slot; a nil
// Categories means the topic accepts every noun.
type Topic struct {
	Korean     string
	Romanized  string
	English    string
	Categories []NounCategory
}

// Restricted reports whether the topic limits its noun slot.
func (t Topic) Restricted() bool {
	return t.Categories != nil
}

// Accepts reports whether a noun of the given category may fill the
// topic's predicate slot.
func (t Topic) Accepts(c NounCategory) bool {
	if !t.Restricted() {
		return true
	}
	return slices.Contains(t.Categories, c)
}

// Noun is the predicate-complement slot of the pattern sentence.
type Noun struct {
	Korean    string
	Romanized string
	English   string
	Category  NounCategory
}

// Vocabulary is the immutable dataset the builder works over. Both
// sequences are ordered; order defines cycling order and is fixed for
// the session.
type Vocabulary struct {
	Topics []Topic
	Nouns  []Noun
}

// CompatibleNouns returns the nouns valid for topic, preserving the
// original relative order. An unrestricted topic gets the full noun
// slice unchanged.
func (v Vocabulary) CompatibleNouns(topic Topic) []Noun {
	if !topic.Restricted() {
		return v.Nouns
	}

	var out []Noun
	for _, n := range v.Nouns {
		if topic.Accepts(n.Category) {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks the dataset invariants the engine relies on:
// non-empty sequences, non-empty Korean and English forms, known
// categories, and a non-empty compatible noun set for every topic.
// A violation is a fatal configuration error at load time.
func (v Vocabulary) Validate() error {
	if len(v.Topics) == 0 {
		return NewValidationError("topics", "at least one topic required")
	}
	if len(v.Nouns) == 0 {
		return NewValidationError("nouns", "at least one noun required")
	}

	var errs []FieldError
	for i, t := range v.Topics {
		if t.Korean == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("topics[%d].kr", i), Message: "required"})
		}
		if t.English == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("topics[%d].en", i), Message: "required"})
		}
		for _, c := range t.Categories {
			if !c.IsValid() {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("topics[%d].categories", i),
					Message: fmt.Sprintf("unknown category %q", c),
				})
			}
		}
	}
	for i, n := range v.Nouns {
		if n.Korean == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("nouns[%d].kr", i), Message: "required"})
		}
		if n.English == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("nouns[%d].en", i), Message: "required"})
		}
		if !n.Category.IsValid() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("nouns[%d].category", i),
				Message: fmt.Sprintf("unknown category %q", n.Category),
			})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}

	for i, t := range v.Topics {
		if len(v.CompatibleNouns(t)) == 0 {
			return fmt.Errorf("topics[%d] %q: %w", i, t.Korean, ErrEmptyCompatibleSet)
		}
	}

	return nil
}

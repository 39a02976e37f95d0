// Package hangul classifies Korean syllable blocks and selects
// phonologically conditioned particles. It operates on the precomposed
// syllable range (U+AC00..U+D7A3) only; jamo and non-Korean runes are
// rejected rather than guessed at.
package hangul

import (
	"fmt"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3
	// Number of jongseong slots per (choseong, jungseong) pair,
	// including slot 0 = no final consonant.
	jongseongCount = 28
)

// Copula variants of the polite "to be" ending.
const (
	CopulaClosed = "이에요" // after a final consonant
	CopulaOpen   = "예요"  // after a vowel
)

// HasFinalConsonant reports whether the last syllable of word carries a
// jongseong (final consonant). Slot 0 of a syllable block means the
// block ends in a vowel sound, so it counts as open.
// Returns domain.ErrUnclassifiableRune if the final rune is not a
// precomposed Hangul syllable.
func HasFinalConsonant(word string) (bool, error) {
	if word == "" {
		return false, fmt.Errorf("empty word: %w", domain.ErrUnclassifiableRune)
	}

	runes := []rune(word)
	last := runes[len(runes)-1]
	if last < syllableBase || last > syllableLast {
		return false, fmt.Errorf("rune %q (U+%04X): %w", last, last, domain.ErrUnclassifiableRune)
	}

	return (last-syllableBase)%jongseongCount != 0, nil
}

// CopulaFor returns the polite copula suffix for word: 이에요 after a
// final consonant, 예요 after a vowel.
func CopulaFor(word string) (string, error) {
	closed, err := HasFinalConsonant(word)
	if err != nil {
		return "", err
	}
	if closed {
		return CopulaClosed, nil
	}
	return CopulaOpen, nil
}

// TopicParticleFor returns 은 after a final consonant, 는 after a vowel.
func TopicParticleFor(word string) (string, error) {
	return pick(word, "은", "는")
}

// SubjectParticleFor returns 이 after a final consonant, 가 after a vowel.
func SubjectParticleFor(word string) (string, error) {
	return pick(word, "이", "가")
}

// ObjectParticleFor returns 을 after a final consonant, 를 after a vowel.
func ObjectParticleFor(word string) (string, error) {
	return pick(word, "을", "를")
}

func pick(word, closed, open string) (string, error) {
	hasFinal, err := HasFinalConsonant(word)
	if err != nil {
		return "", err
	}
	if hasFinal {
		return closed, nil
	}
	return open, nil
}

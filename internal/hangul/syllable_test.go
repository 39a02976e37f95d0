package hangul

import (
	"errors"
	"testing"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

func TestHasFinalConsonant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "closed final", word: "학생", want: true},
		{name: "open final", word: "의사", want: false},
		{name: "single closed syllable", word: "물", want: true},
		{name: "open after closed", word: "사과", want: false},
		{name: "first block of the range", word: "가", want: false},
		{name: "last block of the range", word: "힣", want: true},
		{name: "only last syllable matters", word: "선생님", want: true},
		{name: "multi syllable open", word: "여기", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := HasFinalConsonant(tt.word)
			if err != nil {
				t.Fatalf("HasFinalConsonant(%q) unexpected error: %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("HasFinalConsonant(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

// Every jongseong slot of a syllable block must classify: slot 0 (no
// final consonant) is open, slots 1..27 are closed.
func TestHasFinalConsonant_AllJongseongSlots(t *testing.T) {
	t.Parallel()

	for slot := 0; slot < jongseongCount; slot++ {
		word := string(rune(syllableBase + slot))
		got, err := HasFinalConsonant(word)
		if err != nil {
			t.Fatalf("slot %d: unexpected error: %v", slot, err)
		}
		want := slot != 0
		if got != want {
			t.Errorf("slot %d (%q): got %v, want %v", slot, word, got, want)
		}
	}
}

func TestHasFinalConsonant_Unclassifiable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
	}{
		{name: "empty word", word: ""},
		{name: "latin", word: "abc"},
		{name: "digit", word: "학생1"},
		{name: "bare jamo", word: "ㄱ"},
		{name: "rune just below the range", word: string(rune(syllableBase - 1))},
		{name: "rune just above the range", word: string(rune(syllableLast + 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := HasFinalConsonant(tt.word)
			if !errors.Is(err, domain.ErrUnclassifiableRune) {
				t.Errorf("HasFinalConsonant(%q) error = %v, want ErrUnclassifiableRune", tt.word, err)
			}
		})
	}
}

func TestCopulaFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{word: "학생", want: "이에요"},
		{word: "의사", want: "예요"},
		{word: "선생님", want: "이에요"},
		{word: "사과", want: "예요"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			got, err := CopulaFor(tt.word)
			if err != nil {
				t.Fatalf("CopulaFor(%q) unexpected error: %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("CopulaFor(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestParticles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) (string, error)
		word string
		want string
	}{
		{name: "topic closed", fn: TopicParticleFor, word: "물", want: "은"},
		{name: "topic open", fn: TopicParticleFor, word: "사과", want: "는"},
		{name: "subject closed", fn: SubjectParticleFor, word: "물", want: "이"},
		{name: "subject open", fn: SubjectParticleFor, word: "사과", want: "가"},
		{name: "object closed", fn: ObjectParticleFor, word: "물", want: "을"},
		{name: "object open", fn: ObjectParticleFor, word: "사과", want: "를"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.fn(tt.word)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

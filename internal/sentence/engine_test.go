package sentence

import (
	"errors"
	"testing"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

func testVocabulary() domain.Vocabulary {
	return domain.Vocabulary{
		Topics: []domain.Topic{
			{Korean: "저는", Romanized: "jeoneun", English: "I (topic)"},
			{Korean: "여기는", Romanized: "yeogineun", English: "This place (topic)",
				Categories: []domain.NounCategory{domain.NounCategoryPlace}},
			{Korean: "제 이름은", Romanized: "je ireumeun", English: "My name (topic)",
				Categories: []domain.NounCategory{domain.NounCategoryName}},
		},
		Nouns: []domain.Noun{
			{Korean: "학생", Romanized: "haksaeng", English: "student", Category: domain.NounCategoryJob},
			{Korean: "학교", Romanized: "hakgyo", English: "school", Category: domain.NounCategoryPlace},
			{Korean: "의사", Romanized: "uisa", English: "doctor", Category: domain.NounCategoryJob},
			{Korean: "소라", Romanized: "sora", English: "Sora", Category: domain.NounCategoryName},
			{Korean: "카페", Romanized: "kape", English: "cafe", Category: domain.NounCategoryPlace},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testVocabulary())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngine_RejectsBadDataset(t *testing.T) {
	t.Parallel()

	v := testVocabulary()
	v.Topics[0].Categories = []domain.NounCategory{domain.NounCategoryFood}

	_, err := NewEngine(v)
	if !errors.Is(err, domain.ErrEmptyCompatibleSet) {
		t.Errorf("got %v, want ErrEmptyCompatibleSet", err)
	}
}

func TestEngine_InitialSelection(t *testing.T) {
	t.Parallel()

	sel := newTestEngine(t).Current()
	if sel.TopicIndex != 0 || sel.NounIndex != 0 {
		t.Errorf("initial indices: got (%d, %d), want (0, 0)", sel.TopicIndex, sel.NounIndex)
	}
	if sel.Topic.Korean != "저는" {
		t.Errorf("topic: got %q, want %q", sel.Topic.Korean, "저는")
	}
	if sel.Noun.Korean != "학생" {
		t.Errorf("noun: got %q, want %q", sel.Noun.Korean, "학생")
	}
	if len(sel.Compatible) != 5 {
		t.Errorf("compatible: got %d nouns, want 5", len(sel.Compatible))
	}
}

func TestEngine_AdvanceTopic(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	e.AdvanceNoun() // move noun index off 0 first

	e.AdvanceTopic()
	sel := e.Current()
	if sel.TopicIndex != 1 {
		t.Errorf("topic index: got %d, want 1", sel.TopicIndex)
	}
	if sel.NounIndex != 0 {
		t.Errorf("noun index after topic advance: got %d, want 0", sel.NounIndex)
	}
	if sel.Noun.Korean != "학교" {
		t.Errorf("noun: got %q, want first compatible %q", sel.Noun.Korean, "학교")
	}
}

func TestEngine_AdvanceTopic_WrapsAround(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for i := 0; i < 3; i++ {
		e.AdvanceTopic()
	}
	if sel := e.Current(); sel.TopicIndex != 0 {
		t.Errorf("after full cycle: got topic index %d, want 0", sel.TopicIndex)
	}
}

func TestEngine_AdvanceNoun_CyclesCompatibleOnly(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	e.AdvanceTopic() // "This place": 학교, 카페

	seen := []string{e.Current().Noun.Korean}
	for i := 0; i < 3; i++ {
		e.AdvanceNoun()
		seen = append(seen, e.Current().Noun.Korean)
	}

	want := []string{"학교", "카페", "학교", "카페"}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("step %d: got %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestEngine_AdvanceNoun_NoOpWithSingleNoun(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	e.AdvanceTopic()
	e.AdvanceTopic() // "My name": only 소라

	before := e.Current()
	e.AdvanceNoun()
	after := e.Current()

	if before.NounIndex != after.NounIndex || after.Noun.Korean != "소라" {
		t.Errorf("advance on single-noun set must be a no-op: got %q index %d",
			after.Noun.Korean, after.NounIndex)
	}
}

func TestEngine_CurrentClampsStaleIndex(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	// Walk to the last unrestricted noun (index 4), then switch to a
	// topic whose compatible set has only 2 entries without going
	// through AdvanceTopic's reset.
	for i := 0; i < 4; i++ {
		e.AdvanceNoun()
	}
	e.topicIndex = 1
	sel := e.Current()

	if sel.NounIndex != 0 {
		t.Errorf("stale index must clamp to 0, got %d", sel.NounIndex)
	}
	if sel.Noun.Korean != "학교" {
		t.Errorf("noun after clamp: got %q, want %q", sel.Noun.Korean, "학교")
	}
}

func TestEngine_CurrentIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	e.AdvanceTopic()
	e.AdvanceNoun()

	a, b := e.Current(), e.Current()
	if a.TopicIndex != b.TopicIndex || a.NounIndex != b.NounIndex ||
		a.Topic.Korean != b.Topic.Korean || a.Noun.Korean != b.Noun.Korean {
		t.Errorf("two reads without an advance differ: %+v vs %+v", a, b)
	}
}

func TestEngine_AdvanceNoun_NeverOutOfRange(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for i := 0; i < 20; i++ {
		sel := e.Current()
		if sel.NounIndex < 0 || sel.NounIndex >= len(sel.Compatible) {
			t.Fatalf("step %d: noun index %d out of range of %d compatible nouns",
				i, sel.NounIndex, len(sel.Compatible))
		}
		if i%3 == 0 {
			e.AdvanceTopic()
		} else {
			e.AdvanceNoun()
		}
	}
}

package tts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hanbitlee/mykorean-backend/internal/config"
	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

func testVocabulary() domain.Vocabulary {
	return domain.Vocabulary{
		Topics: []domain.Topic{
			{Korean: "저는", English: "I (topic)"},
			{Korean: "여기는", English: "This place (topic)",
				Categories: []domain.NounCategory{domain.NounCategoryPlace}},
		},
		Nouns: []domain.Noun{
			{Korean: "학생", English: "student", Category: domain.NounCategoryJob},
			{Korean: "학교", English: "school", Category: domain.NounCategoryPlace},
		},
	}
}

// synthMock records synthesized texts and returns fixed audio.
type synthMock struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (m *synthMock) Synthesize(_ context.Context, text string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.texts = append(m.texts, text)
	return []byte("mp3:" + text), nil
}

func newTestService(t *testing.T, synth Synthesizer, dir string) *Service {
	t.Helper()
	return NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		synth,
		config.TTSConfig{OutputDir: dir, Concurrency: 3, Timeout: time.Second},
	)
}

func TestTexts(t *testing.T) {
	t.Parallel()

	texts, err := Texts(testVocabulary())
	if err != nil {
		t.Fatalf("Texts: %v", err)
	}

	want := []string{
		"저는", "여기는", // topics
		"학생", "학교", // nouns
		"학생이에요", "학교예요", // noun + copula
		"학생이", "학교가", // noun + subject particle
		"학생을", "학교를", // noun + object particle
		"저는 학생이에요.", "저는 학교예요.", // unrestricted topic sentences
		"여기는 학교예요.", // restricted topic sentence
	}
	set := make(map[string]bool, len(texts))
	for _, text := range texts {
		set[text] = true
	}
	for _, w := range want {
		if !set[w] {
			t.Errorf("missing text %q in %v", w, texts)
		}
	}
	if len(texts) != len(want) {
		t.Errorf("got %d texts, want %d: %v", len(texts), len(want), texts)
	}

	// Restricted pairs must not be synthesized.
	if set["여기는 학생이에요."] {
		t.Error("incompatible pair leaked into the text set")
	}

	// Sorted and deduplicated.
	for i := 1; i < len(texts); i++ {
		if texts[i-1] >= texts[i] {
			t.Fatalf("texts not sorted/unique at %d: %v", i, texts)
		}
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	synth := &synthMock{}
	svc := newTestService(t, synth, dir)

	manifest, err := svc.Build(context.Background(), testVocabulary())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(manifest) != 13 {
		t.Fatalf("manifest size: got %d, want 13", len(manifest))
	}

	// Every manifest entry must exist on disk with the synthesized bytes.
	for text, filename := range manifest {
		if !strings.HasSuffix(filename, ".mp3") {
			t.Errorf("filename %q missing .mp3 suffix", filename)
		}
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			t.Errorf("audio for %q: %v", text, err)
			continue
		}
		if string(data) != "mp3:"+text {
			t.Errorf("audio for %q: got %q", text, data)
		}
	}

	// Manifest file is valid JSON matching the returned map.
	raw, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var onDisk Manifest
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if len(onDisk) != len(manifest) {
		t.Errorf("manifest on disk has %d entries, want %d", len(onDisk), len(manifest))
	}
}

func TestBuild_SkipsExistingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	synth := &synthMock{}
	svc := newTestService(t, synth, dir)

	if _, err := svc.Build(context.Background(), testVocabulary()); err != nil {
		t.Fatalf("first build: %v", err)
	}
	firstCount := len(synth.texts)

	if _, err := svc.Build(context.Background(), testVocabulary()); err != nil {
		t.Fatalf("second build: %v", err)
	}

	if len(synth.texts) != firstCount {
		t.Errorf("second build re-synthesized: %d calls, want %d", len(synth.texts), firstCount)
	}
}

func TestBuild_SynthesizerError(t *testing.T) {
	t.Parallel()

	synth := &synthMock{err: errors.New("bridge down")}
	svc := newTestService(t, synth, t.TempDir())

	if _, err := svc.Build(context.Background(), testVocabulary()); err == nil {
		t.Fatal("expected error when synthesis fails")
	}
}

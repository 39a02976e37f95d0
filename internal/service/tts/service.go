// Package tts builds the pronunciation audio set for a vocabulary:
// one MP3 per pronounceable text plus a manifest.json mapping text to
// filename, which the widget uses for offline playback.
package tts

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/hanbitlee/mykorean-backend/internal/config"
	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// ManifestName is the index file written next to the audio files.
const ManifestName = "manifest.json"

// Synthesizer renders a Korean text as MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Manifest maps each pronounceable text to its audio filename.
type Manifest map[string]string

// Service generates the audio set.
type Service struct {
	synth Synthesizer
	cfg   config.TTSConfig
	log   *slog.Logger
}

// NewService creates a TTS service.
func NewService(log *slog.Logger, synth Synthesizer, cfg config.TTSConfig) *Service {
	return &Service{
		synth: synth,
		cfg:   cfg,
		log:   log.With("service", "tts"),
	}
}

// Build synthesizes audio for every pronounceable text of v into the
// configured output directory and writes the manifest. Files that
// already exist are kept, so re-runs only fetch what is missing.
// Synthesis runs with bounded concurrency; the first failure aborts
// the build.
func (s *Service) Build(ctx context.Context, v domain.Vocabulary) (Manifest, error) {
	texts, err := Texts(v)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	manifest := make(Manifest, len(texts))
	for i, text := range texts {
		manifest[text] = audioFilename(i, text)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		created  int
	)
	sem := make(chan struct{}, s.cfg.Concurrency)

	for _, text := range texts {
		filename := manifest[text]
		path := filepath.Join(s.cfg.OutputDir, filename)
		if _, err := os.Stat(path); err == nil {
			continue // already synthesized on a previous run
		}

		wg.Add(1)
		go func(text, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			mu.Lock()
			aborted := firstErr != nil
			mu.Unlock()
			if aborted || ctx.Err() != nil {
				return
			}

			audio, err := s.synth.Synthesize(ctx, text)
			if err == nil {
				err = os.WriteFile(path, audio, 0o644)
			}

			mu.Lock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("synthesize %q: %w", text, err)
				}
			} else {
				created++
			}
			mu.Unlock()
		}(text, path)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if err := s.writeManifest(manifest); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "audio set built",
		slog.Int("texts", len(texts)),
		slog.Int("created", created),
		slog.String("dir", s.cfg.OutputDir),
	)

	return manifest, nil
}

func (s *Service) writeManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	path := filepath.Join(s.cfg.OutputDir, ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// audioFilename builds the stable per-text filename: the position in
// the sorted text list plus a short content hash, e.g. "0007_3f2a1c.mp3".
func audioFilename(index int, text string) string {
	sum := md5.Sum([]byte(text))
	return fmt.Sprintf("%04d_%s.mp3", index, hex.EncodeToString(sum[:])[:6])
}

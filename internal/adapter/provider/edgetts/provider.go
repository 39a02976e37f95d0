// Package edgetts synthesizes Korean speech through an edge-tts
// bridge: an HTTP endpoint that accepts text plus a neural voice name
// and answers with MP3 audio.
package edgetts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hanbitlee/mykorean-backend/internal/config"
)

// Provider requests synthesized audio from the configured endpoint.
type Provider struct {
	endpoint   string
	voice      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from TTS configuration.
func NewProvider(cfg config.TTSConfig, logger *slog.Logger) *Provider {
	return &Provider{
		endpoint:   cfg.Endpoint,
		voice:      cfg.Voice,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "edgetts"),
	}
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Synthesize renders text as MP3 audio.
func (p *Provider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(synthesizeRequest{Text: text, Voice: p.voice})
	if err != nil {
		return nil, fmt.Errorf("edgetts: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("edgetts: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "edgetts request",
		slog.String("text", text),
		slog.String("voice", p.voice),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("edgetts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edgetts: unexpected status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("edgetts: read body: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("edgetts: empty audio for %q", text)
	}

	return audio, nil
}

// Command ttsgen pre-generates MP3 audio for every text the widget can
// speak: topics, nouns, noun phrases with their copula, and all
// compatible sentences. It writes the files plus a manifest.json mapping
// each text to its filename. Already existing files are skipped, so
// reruns only synthesize what is missing.
//
// Flags:
//
//	--file  path to the vocabulary JSON file (default: data/vocab.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hanbitlee/mykorean-backend/internal/adapter/provider/edgetts"
	"github.com/hanbitlee/mykorean-backend/internal/adapter/vocabfile"
	"github.com/hanbitlee/mykorean-backend/internal/app"
	"github.com/hanbitlee/mykorean-backend/internal/config"
	"github.com/hanbitlee/mykorean-backend/internal/service/tts"
)

func main() {
	fileFlag := flag.String("file", "data/vocab.json", "path to the vocabulary JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	vocab, err := vocabfile.Load(*fileFlag)
	if err != nil {
		logger.Error("load vocabulary file",
			slog.String("path", *fileFlag),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	provider := edgetts.NewProvider(cfg.TTS, logger)
	svc := tts.NewService(logger, provider, cfg.TTS)

	manifest, err := svc.Build(ctx, vocab)
	if err != nil {
		logger.Error("build audio", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("audio generated",
		slog.Int("files", len(manifest)),
		slog.String("dir", cfg.TTS.OutputDir),
	)
}

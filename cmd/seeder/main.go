// Command seeder loads a vocabulary JSON file into PostgreSQL, replacing
// whatever dataset is currently stored. It is intended to be run offline,
// not as part of the main server.
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

	"github.com/hanbitlee/mykorean-backend/internal/adapter/postgres"
	vocabrepo "github.com/hanbitlee/mykorean-backend/internal/adapter/postgres/vocab"
	"github.com/hanbitlee/mykorean-backend/internal/adapter/vocabfile"
	"github.com/hanbitlee/mykorean-backend/internal/app"
	"github.com/hanbitlee/mykorean-backend/internal/config"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(cfg.Database); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	repo := vocabrepo.New(pool)

	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.ReplaceVocabulary(ctx, vocab)
	})
	if err != nil {
		logger.Error("replace vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("vocabulary seeded",
		slog.Int("topics", len(vocab.Topics)),
		slog.Int("nouns", len(vocab.Nouns)),
	)
}

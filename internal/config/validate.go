package config

import (
	"fmt"
	"strings"
)

// Known vocabulary sources.
const (
	VocabSourceFile     = "file"
	VocabSourcePostgres = "postgres"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Vocab.Source)) {
	case VocabSourceFile:
		if c.Vocab.Path == "" {
			return fmt.Errorf("vocab.path is required when vocab.source is %q", VocabSourceFile)
		}
	case VocabSourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when vocab.source is %q", VocabSourcePostgres)
		}
	default:
		return fmt.Errorf("vocab.source must be %q or %q (got %q)",
			VocabSourceFile, VocabSourcePostgres, c.Vocab.Source)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.TTS.Concurrency <= 0 {
		return fmt.Errorf("tts.concurrency must be > 0 (got %d)", c.TTS.Concurrency)
	}

	return nil
}

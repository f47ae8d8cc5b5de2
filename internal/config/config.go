package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken string
	BotDebug bool
	// Seed makes every round reproducible when set. Nil means random.
	Seed *int64
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
	}

	if v := os.Getenv("BOT_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BOT_DEBUG %q: %w", v, err)
		}
		cfg.BotDebug = debug
	}

	if v := os.Getenv("ROUND_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ROUND_SEED %q: %w", v, err)
		}
		cfg.Seed = &seed
	}

	return cfg, nil
}

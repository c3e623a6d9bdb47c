package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SeatRows int `envconfig:"SEAT_ROWS" default:"5"`
	SeatCols int `envconfig:"SEAT_COLS" default:"10"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin"`

	SeedCatalog bool   `envconfig:"SEED_CATALOG" default:"true"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the optional env files and then the process environment.
// Missing files are skipped. Variables already set in the environment win
// over the files.
func Load(envFiles ...string) (*Config, error) {
	const op = "config.Load"

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: read %s: %w", op, file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.SeatRows <= 0 || cfg.SeatCols <= 0 {
		return nil, fmt.Errorf("%s: seat grid must be at least 1x1, got %dx%d", op, cfg.SeatRows, cfg.SeatCols)
	}

	return &cfg, nil
}

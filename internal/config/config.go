package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"ratgen/internal/storage"
)

// Config holds settings shared by every ratgenctl command.
type Config struct {
	StoreKind string `env:"RATGEN_STORE"`
	DBPath    string `env:"RATGEN_DB_PATH" envDefault:"ratgen.db"`
	Plot      bool   `env:"RATGEN_PLOT"    envDefault:"true"`
	Verbose   bool   `env:"RATGEN_VERBOSE"`
	Lang      string `env:"RATGEN_LANG"    envDefault:"en"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreKind == "" {
		cfg.StoreKind = storage.DefaultStoreKind()
	}
	return cfg, nil
}

// Language resolves Lang to a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	if c.Lang == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", c.Lang, err)
	}
	return tag, nil
}

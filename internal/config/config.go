// Package config loads server settings from the environment.
//
// main loads a .env file first (godotenv), so values there behave like
// regular environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DevJWTSecret signs round tokens when JWT_SECRET is unset.
const DevJWTSecret = "dev_secret_change_me"

// Config holds every tunable of the server.
type Config struct {
	Port         string `env:"PORT"          envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL"     envDefault:"info"`
	LogPretty    bool   `env:"LOG_PRETTY"    envDefault:"false"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// Root word catalog; empty means the embedded start.txt.
	StartWordsFile string `env:"START_WORDS_FILE"`

	// Dictionary: a SQLite database wins over a plain word file; with
	// neither, the embedded dictionary.txt is used.
	DictionaryFile    string        `env:"DICTIONARY_FILE"`
	DictionaryDB      string        `env:"DICTIONARY_DB"`
	DictionaryTimeout time.Duration `env:"DICTIONARY_TIMEOUT" envDefault:"0s"`

	JWTSecret      string        `env:"JWT_SECRET"      envDefault:"dev_secret_change_me"`
	RoundTokenTTL  time.Duration `env:"ROUND_TOKEN_TTL" envDefault:"24h"`
	Production     bool          `env:"PRODUCTION"      envDefault:"false"`
	DailySalt      string        `env:"DAILY_SALT"      envDefault:"local_dev_salt"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RoundTokenTTL <= 0 {
		return Config{}, fmt.Errorf("ROUND_TOKEN_TTL must be positive, got %s", cfg.RoundTokenTTL)
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }

// DictionaryKind names the dictionary backend the config selects.
func (c Config) DictionaryKind() string {
	switch {
	case c.DictionaryDB != "":
		return "sqlite"
	case c.DictionaryFile != "":
		return "file"
	}
	return "embedded"
}

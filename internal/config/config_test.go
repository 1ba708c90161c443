package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5175" {
		t.Errorf("Port = %q, want 5175", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.JWTSecret != DevJWTSecret {
		t.Errorf("JWTSecret = %q, want dev default", cfg.JWTSecret)
	}
	if cfg.RoundTokenTTL != 24*time.Hour {
		t.Errorf("RoundTokenTTL = %v, want 24h", cfg.RoundTokenTTL)
	}
	if cfg.DictionaryTimeout != 0 {
		t.Errorf("DictionaryTimeout = %v, want 0 (blocking)", cfg.DictionaryTimeout)
	}
	if cfg.Addr() != ":5175" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DICTIONARY_TIMEOUT", "250ms")
	t.Setenv("START_WORDS_FILE", "/tmp/start.txt")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DictionaryTimeout != 250*time.Millisecond {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.StartWordsFile != "/tmp/start.txt" || !cfg.LogPretty {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DICTIONARY_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("Load accepted an invalid duration")
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("ROUND_TOKEN_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Error("Load accepted a zero token TTL")
	}
}

func TestDictionaryKind(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{}, "embedded"},
		{Config{DictionaryFile: "words.txt"}, "file"},
		{Config{DictionaryDB: "dict.db", DictionaryFile: "words.txt"}, "sqlite"},
	}
	for _, tt := range tests {
		if got := tt.cfg.DictionaryKind(); got != tt.want {
			t.Errorf("DictionaryKind(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

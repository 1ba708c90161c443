package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/assets"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/config"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/httpserver"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/store"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	if cfg.JWTSecret == config.DevJWTSecret {
		log.Warn().Msg("JWT_SECRET not set; using development secret")
	}

	catalog := words.LoadOrFallback(catalogSource(cfg))

	oracle, closeOracle, err := openOracle(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("dictionary", cfg.DictionaryKind()).Msg("failed to open dictionary")
	}
	defer closeOracle()
	oracle = dictionary.WithTimeout(oracle, cfg.DictionaryTimeout)

	srv := httpserver.New(store.NewMemoryStore(), catalog, oracle, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.RoundTokenTTL,
		SecureCookies:  cfg.Production,
		DailySalt:      cfg.DailySalt,
		RequestTimeout: cfg.RequestTimeout,
		DictionaryKind: cfg.DictionaryKind(),
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("dictionary", cfg.DictionaryKind()).Msg("starting go-server")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// catalogSource picks the configured root word file or the embedded list.
func catalogSource(cfg config.Config) words.Source {
	if cfg.StartWordsFile != "" {
		return words.FileSource(cfg.StartWordsFile)
	}
	return words.EmbeddedSource{}
}

// openOracle builds the dictionary the config selects. The returned func
// releases any resources it holds.
func openOracle(cfg config.Config) (dictionary.Oracle, func(), error) {
	switch cfg.DictionaryKind() {
	case "sqlite":
		db, err := dictionary.OpenSQLite(cfg.DictionaryDB)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() { _ = db.Close() }
		if err := seedSQLite(db, cfg.DictionaryFile); err != nil {
			closeDB()
			return nil, nil, err
		}
		return db, closeDB, nil
	case "file":
		wl, err := dictionary.FromFile(cfg.DictionaryFile, dictionary.Language)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Int("words", wl.Len(dictionary.Language)).Msg("dictionary loaded")
		return wl, func() {}, nil
	default:
		wl, err := dictionary.Embedded()
		if err != nil {
			return nil, nil, err
		}
		log.Info().Int("words", wl.Len(dictionary.Language)).Msg("embedded dictionary loaded")
		return wl, func() {}, nil
	}
}

// seedSQLite fills an empty dictionary database from file, or from the
// embedded list when file is empty.
func seedSQLite(db *dictionary.SQLite, file string) error {
	ctx := context.Background()
	n, err := db.Count(ctx, dictionary.Language)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Int("words", n).Msg("dictionary database ready")
		return nil
	}

	var list []string
	if file != "" {
		list, err = dictionary.ReadWordFile(file)
	} else {
		list, err = assets.DictionaryList()
	}
	if err != nil {
		return err
	}
	added, err := db.Import(ctx, dictionary.Language, list)
	if err != nil {
		return err
	}
	log.Info().Int("words", added).Msg("dictionary database seeded")
	return nil
}

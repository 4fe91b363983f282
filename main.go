package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhunt/internal/httpserver"
	"github.com/robalobadob/wordhunt/internal/store"
	"github.com/robalobadob/wordhunt/internal/words"
)

func main() {
	importPath := flag.String("import", "", "import a word file into LEXICON_DB and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg := loadConfig()
	setupLogging(cfg)

	ctx := context.Background()

	var db *sql.DB
	if cfg.LexiconDB != "" {
		var err error
		db, err = openDB(ctx, cfg.LexiconDB)
		if err != nil {
			log.Fatal().Err(err).Str("db", cfg.LexiconDB).Msg("failed to open lexicon db")
		}
		defer db.Close()
	}

	if *importPath != "" {
		if db == nil {
			log.Fatal().Msg("-import needs LEXICON_DB")
		}
		read, added, err := importWords(ctx, db, *importPath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *importPath).Msg("import failed")
		}
		log.Info().Str("file", *importPath).Int("read", read).Int("added", added).Msg("words imported")
		return
	}

	policy, err := cfg.policy()
	if err != nil {
		log.Fatal().Err(err).Msg("bad SCORE_TABLE")
	}
	if err := words.Init(ctx, db, policy.MinLength); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	n, src := words.Stats()
	log.Info().Int("words", n).Str("source", src).Str("scoring", policy.String()).Msg("lexicon ready")

	srv := httpserver.New(store.NewMemoryStore(), httpserver.Config{
		Lexicon:      words.Lexicon(),
		Policy:       policy,
		Tokens:       httpserver.Tokens{Secret: []byte(cfg.RoundSecret), TTL: cfg.RoundTTL},
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Msg("starting wordhunt server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogging applies LOG_LEVEL and LOG_PRETTY to the global logger.
func setupLogging(cfg config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if cfg.RoundSecret == "dev_secret_change_me" {
		log.Warn().Msg("ROUND_SECRET not set; using dev secret")
	}
}

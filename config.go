package main

import (
	"os"
	"strconv"
	"time"

	"github.com/robalobadob/wordhunt/internal/scoring"
)

// config is the process configuration, read from the environment after
// godotenv has loaded .env.
type config struct {
	Port         string
	LogLevel     string
	LogPretty    bool
	LexiconDB    string // optional SQLite path
	ScoreTable   string // "3:100,4:400,..." ; empty means scoring.Default
	ScoreMinLen  int
	RoundSecret  string
	RoundTTL     time.Duration
	ClientOrigin string
}

func loadConfig() config {
	return config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    getEnv("LOG_PRETTY", "") == "1",
		LexiconDB:    getEnv("LEXICON_DB", ""),
		ScoreTable:   getEnv("SCORE_TABLE", ""),
		ScoreMinLen:  envInt("SCORE_MIN_LEN", 3),
		RoundSecret:  getEnv("ROUND_SECRET", "dev_secret_change_me"),
		RoundTTL:     time.Duration(envInt("ROUND_TOKEN_HOURS", 6)) * time.Hour,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// policy builds the scoring policy from SCORE_TABLE / SCORE_MIN_LEN.
func (c config) policy() (scoring.Policy, error) {
	if c.ScoreTable == "" {
		p := scoring.Default()
		p.MinLength = c.ScoreMinLen
		return p, nil
	}
	return scoring.Parse(c.ScoreTable, c.ScoreMinLen)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or invalid.
func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

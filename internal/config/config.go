// Package config loads application settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// DatabaseDriver is "sqlite3" or "postgres"
	DatabaseDriver string
	// DatabaseDSN is the sqlite file path or postgres connection URL
	DatabaseDSN string
	// QuestionsPerQuiz is how many questions a quiz session targets
	QuestionsPerQuiz int
	// Cooldown is the mandatory wait between quiz completions
	Cooldown time.Duration
	// QuizInterval is how far ahead the next quiz is recommended
	QuizInterval time.Duration
	// QuizCountdown is the per-session timer that forces a submit
	QuizCountdown time.Duration
}

// Default returns the default configuration
func Default() Config {
	return Config{
		DatabaseDriver:   "sqlite3",
		DatabaseDSN:      "data/quizbank.db",
		QuestionsPerQuiz: 25,
		Cooldown:         2 * time.Hour,
		QuizInterval:     1 * time.Hour,
		QuizCountdown:    10 * time.Minute,
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults for anything unset or invalid.
func Load() Config {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.DatabaseDriver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("QUESTIONS_PER_QUIZ"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QuestionsPerQuiz = n
		}
	}
	if d := durationEnv("QUIZ_COOLDOWN"); d > 0 {
		cfg.Cooldown = d
	}
	if d := durationEnv("QUIZ_INTERVAL"); d > 0 {
		cfg.QuizInterval = d
	}
	if d := durationEnv("QUIZ_COUNTDOWN"); d > 0 {
		cfg.QuizCountdown = d
	}
	return cfg
}

// durationEnv parses a duration variable, returning 0 when unset or invalid.
func durationEnv(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/letsssgooo/quizRunner/internal/quiz"
)

// Источники квиза.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config содержит настройки приложения.
type Config struct {
	LogLevel         string
	Source           string
	QuizFile         string
	DatabaseURL      string
	QuizName         string
	AutoAdvanceDelay time.Duration
	NoColor          bool
}

// Load читает настройки из окружения. Файл .env подгружается, если он есть.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Source:           getEnv("QUIZ_SOURCE", SourceBuiltin),
		QuizFile:         getEnv("QUIZ_FILE", ""),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		QuizName:         getEnv("QUIZ_NAME", ""),
		AutoAdvanceDelay: getEnvDuration("AUTO_ADVANCE_DELAY", quiz.DefaultAutoAdvanceDelay),
		NoColor:          getEnvBool("NO_COLOR", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// getEnvBool считает любое непустое значение, кроме явного false, истиной (как NO_COLOR).
func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}

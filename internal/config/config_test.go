package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/letsssgooo/quizRunner/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "QUIZ_SOURCE", "QUIZ_FILE", "DATABASE_URL", "QUIZ_NAME", "AUTO_ADVANCE_DELAY", "NO_COLOR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceBuiltin, cfg.Source)
	assert.Equal(t, quiz.DefaultAutoAdvanceDelay, cfg.AutoAdvanceDelay)
	assert.False(t, cfg.NoColor)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUIZ_SOURCE", SourcePostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/quiz")
	t.Setenv("QUIZ_NAME", "biology")
	t.Setenv("AUTO_ADVANCE_DELAY", "3s")
	t.Setenv("NO_COLOR", "1")

	cfg := Load()

	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, SourcePostgres, cfg.Source)
	assert.Equal(t, "biology", cfg.QuizName)
	assert.Equal(t, 3*time.Second, cfg.AutoAdvanceDelay)
	assert.True(t, cfg.NoColor)
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("AUTO_ADVANCE_DELAY", "soon")

	assert.Equal(t, quiz.DefaultAutoAdvanceDelay, Load().AutoAdvanceDelay)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{name: "builtin", cfg: Config{Source: SourceBuiltin, AutoAdvanceDelay: time.Second}, valid: true},
		{name: "file", cfg: Config{Source: SourceFile, QuizFile: "q.json", AutoAdvanceDelay: time.Second}, valid: true},
		{name: "file without path", cfg: Config{Source: SourceFile, AutoAdvanceDelay: time.Second}},
		{name: "postgres without dsn", cfg: Config{Source: SourcePostgres, QuizName: "q", AutoAdvanceDelay: time.Second}},
		{name: "postgres without name", cfg: Config{Source: SourcePostgres, DatabaseURL: "postgres://", AutoAdvanceDelay: time.Second}},
		{name: "unknown source", cfg: Config{Source: "redis", AutoAdvanceDelay: time.Second}},
		{name: "zero delay", cfg: Config{Source: SourceBuiltin}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "WARN"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "loud"}).SlogLevel())
}

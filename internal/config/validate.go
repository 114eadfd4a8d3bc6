package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrConfig возвращается при некорректных настройках.
var ErrConfig = errors.New("invalid config")

// Validate проверяет, что для выбранного источника заданы нужные параметры.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceBuiltin:
	case SourceFile:
		if c.QuizFile == "" {
			return fmt.Errorf("%w: source %q requires quiz file", ErrConfig, c.Source)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: source %q requires database url", ErrConfig, c.Source)
		}
		if c.QuizName == "" {
			return fmt.Errorf("%w: source %q requires quiz name", ErrConfig, c.Source)
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrConfig, c.Source)
	}

	if c.AutoAdvanceDelay <= 0 {
		return fmt.Errorf("%w: auto advance delay must be positive", ErrConfig)
	}

	return nil
}

// SlogLevel переводит LogLevel в slog.Level. Неизвестные значения дают Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/letsssgooo/quizRunner/internal/clock"
	"github.com/letsssgooo/quizRunner/internal/config"
	"github.com/letsssgooo/quizRunner/internal/events/fetcher"
	"github.com/letsssgooo/quizRunner/internal/events/sender"
	"github.com/letsssgooo/quizRunner/internal/lib/slogcustom"
	"github.com/letsssgooo/quizRunner/internal/quiz"
	"github.com/letsssgooo/quizRunner/internal/runner"
	"github.com/letsssgooo/quizRunner/internal/storage"
	"github.com/letsssgooo/quizRunner/internal/storage/postgres"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	cfg := config.Load()

	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pflag.StringVar(&cfg.Source, "source", cfg.Source, "quiz source: builtin, file, postgres")
	pflag.StringVar(&cfg.QuizFile, "file", cfg.QuizFile, "path to quiz JSON for --source=file")
	pflag.StringVar(&cfg.DatabaseURL, "dsn", cfg.DatabaseURL, "postgres DSN for --source=postgres")
	pflag.StringVar(&cfg.QuizName, "quiz", cfg.QuizName, "quiz name for --source=postgres")
	pflag.DurationVar(&cfg.AutoAdvanceDelay, "auto-advance", cfg.AutoAdvanceDelay, "pause before moving on after a timeout")
	pflag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	pflag.Parse()

	log := setupLogger(cfg)
	slog.SetDefault(log)

	if err := run(cfg); err != nil {
		slog.Error("quiz runner failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	q, err := source.GetQuiz(ctx)
	if err != nil {
		return err
	}
	slog.Debug("quiz loaded", "id", q.ID, "title", q.Title, "questions", len(q.Questions))

	out := sender.NewTerminalSender(os.Stdout, useColors(cfg, os.Stdout))
	fmt.Fprintln(os.Stdout, q.Title)
	out.Help()

	engine := quiz.NewEngine(q, out, clock.NewSystem(), quiz.Settings{
		AutoAdvanceDelay: cfg.AutoAdvanceDelay,
	})

	err = runner.NewRunner(fetcher.NewLineFetcher(os.Stdin), engine, out).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.Source {
	case config.SourceFile:
		return storage.NewFileStorage(cfg.QuizFile), func() {}, nil
	case config.SourcePostgres:
		st, err := postgres.NewStorage(ctx, cfg.DatabaseURL, cfg.QuizName)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return st, st.Close, nil
	default:
		return storage.NewBuiltinStorage(), func() {}, nil
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	log := slog.New(slogcustom.NewCustomHandler(os.Stderr, cfg.SlogLevel(), useColors(cfg, os.Stderr)))
	return log
}

// useColors включает цвет, только если он не запрещён и f — терминал.
func useColors(cfg *config.Config, f *os.File) bool {
	return !cfg.NoColor && term.IsTerminal(int(f.Fd()))
}

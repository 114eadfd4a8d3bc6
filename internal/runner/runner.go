package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/letsssgooo/quizRunner/internal/events/fetcher"
	"github.com/letsssgooo/quizRunner/internal/events/sender"
	"github.com/letsssgooo/quizRunner/internal/quiz"
)

// Engine — переходы движка, которые вызывает Runner.
type Engine interface {
	Start()
	Reset()
	Close()
	SelectOption(option int)
	Submit()
	Advance()
	State() quiz.Snapshot
}

// Runner связывает ввод пользователя с движком квиза.
type Runner struct {
	fetcher fetcher.Fetcher
	engine  Engine
	sender  sender.Sender
}

// NewRunner создаёт Runner.
func NewRunner(f fetcher.Fetcher, e Engine, s sender.Sender) *Runner {
	return &Runner{
		fetcher: f,
		engine:  e,
		sender:  s,
	}
}

// Run запускает квиз и обрабатывает команды до quit, конца ввода или отмены ctx.
func (r *Runner) Run(ctx context.Context) error {
	r.engine.Start()
	defer r.engine.Close()

	for {
		cmd, err := r.fetcher.Next(ctx)
		if errors.Is(err, io.EOF) {
			slog.Debug("input closed")
			return nil
		}
		if err != nil {
			return err
		}

		if quit := r.HandleCommand(cmd); quit {
			return nil
		}
	}
}

// HandleCommand выполняет одну команду. Возвращает true, если нужно выйти.
func (r *Runner) HandleCommand(cmd fetcher.Command) bool {
	slog.Debug("command", "type", cmd.Type, "option", cmd.Option)

	switch cmd.Type {
	case fetcher.CommandSelect:
		r.engine.SelectOption(cmd.Option)
	case fetcher.CommandSubmit:
		r.engine.Submit()
	case fetcher.CommandNext:
		r.engine.Advance()
	case fetcher.CommandReset:
		// Повтор доступен только после раскрытия ответа или в конце квиза.
		state := r.engine.State()
		if state.Phase != quiz.PhaseFinished && !state.Locked {
			r.sender.Notice("Retry is available after the answer is shown.")
			return false
		}
		r.engine.Reset()
	case fetcher.CommandHelp:
		r.sender.Help()
	case fetcher.CommandQuit:
		return true
	default:
		r.sender.Notice(fmt.Sprintf("Unknown command %q, type h for help.", cmd.Raw))
	}

	return false
}

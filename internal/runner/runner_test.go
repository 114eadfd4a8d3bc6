package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/letsssgooo/quizRunner/internal/clock"
	"github.com/letsssgooo/quizRunner/internal/events/fetcher"
	"github.com/letsssgooo/quizRunner/internal/events/sender"
	"github.com/letsssgooo/quizRunner/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptFetcher отдаёт заранее заданные команды, затем io.EOF.
type scriptFetcher struct {
	lines []string
	// after вызывается после выдачи каждой команды с её номером.
	after func(i int)
	pos   int
}

func (f *scriptFetcher) Next(ctx context.Context) (fetcher.Command, error) {
	if f.pos > 0 && f.after != nil {
		f.after(f.pos - 1)
	}
	if f.pos >= len(f.lines) {
		return fetcher.Command{}, io.EOF
	}

	line := f.lines[f.pos]
	f.pos++

	return fetcher.ParseCommand(line), nil
}

func newTestRunner(t *testing.T, questions string, f fetcher.Fetcher) (*Runner, *quiz.Engine, *clock.Manual, *bytes.Buffer) {
	t.Helper()

	q, err := quiz.LoadQuiz([]byte(`{"title": "Runner Quiz", "questions": [` + questions + `]}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	out := sender.NewTerminalSender(&buf, false)
	clk := clock.NewManual()
	engine := quiz.NewEngine(q, out, clk, quiz.Settings{})

	return NewRunner(f, engine, out), engine, clk, &buf
}

const twoQuestions = `
	{"text": "Q1", "options": ["A1", "B1", "C1", "D1"], "correct": 0},
	{"text": "Q2", "options": ["A2", "B2", "C2", "D2"], "correct": 1}
`

func TestRun_TwoQuestionScenario(t *testing.T) {
	f := &scriptFetcher{lines: []string{"a", "s", "n", "c", "s", "n"}}
	r, engine, _, buf := newTestRunner(t, twoQuestions, f)

	require.NoError(t, r.Run(context.Background()))

	s := engine.State()
	assert.Equal(t, quiz.PhaseFinished, s.Phase)
	assert.Equal(t, 1, s.Score)

	out := buf.String()
	assert.Contains(t, out, "Your score: 1 / 2")
	assert.Contains(t, out, "Accuracy: 50%")
}

func TestRun_QuitStopsTimers(t *testing.T) {
	f := &scriptFetcher{lines: []string{"q", "a"}}
	r, engine, clk, _ := newTestRunner(t, twoQuestions, f)

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 0, clk.Pending())
	assert.Equal(t, quiz.NoSelection, engine.State().Selected)
}

func TestRun_TimeoutAutoAdvance(t *testing.T) {
	var clk *clock.Manual
	f := &scriptFetcher{
		lines: []string{"b"},
		after: func(i int) {
			// Пользователь ничего не отправляет, время выходит
			clk.Advance(quiz.Period + quiz.DefaultAutoAdvanceDelay)
		},
	}
	r, engine, c, buf := newTestRunner(t, twoQuestions, f)
	clk = c

	require.NoError(t, r.Run(context.Background()))

	s := engine.State()
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 0, s.Score)
	assert.Contains(t, buf.String(), "Time is up.")
	assert.Contains(t, buf.String(), "[Q2 / 2]")
}

func TestHandleCommand_ResetGating(t *testing.T) {
	r, engine, _, buf := newTestRunner(t, twoQuestions, &scriptFetcher{})
	engine.Start()
	defer engine.Close()

	// Ответ ещё не раскрыт — сброс запрещён
	r.HandleCommand(fetcher.ParseCommand("a"))
	r.HandleCommand(fetcher.ParseCommand("r"))
	assert.Equal(t, 0, engine.State().Selected)
	assert.Contains(t, buf.String(), "Retry is available after the answer is shown.")

	// После раскрытия — разрешён
	r.HandleCommand(fetcher.ParseCommand("s"))
	r.HandleCommand(fetcher.ParseCommand("r"))

	s := engine.State()
	assert.Equal(t, quiz.PhaseAnswering, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, quiz.NoSelection, s.Selected)
}

func TestHandleCommand_ResetWhenFinished(t *testing.T) {
	r, engine, _, buf := newTestRunner(t, twoQuestions, &scriptFetcher{})
	engine.Start()
	defer engine.Close()

	for _, line := range []string{"a", "s", "n", "b", "s", "n"} {
		r.HandleCommand(fetcher.ParseCommand(line))
	}
	require.Equal(t, quiz.PhaseFinished, engine.State().Phase)
	require.Equal(t, 2, engine.State().Score)

	buf.Reset()
	r.HandleCommand(fetcher.ParseCommand("r"))

	s := engine.State()
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 0, s.Score)
	assert.Contains(t, buf.String(), "[Q1 / 2]")
}

func TestHandleCommand_OutOfRangeOption(t *testing.T) {
	r, engine, _, _ := newTestRunner(t, `{"text": "Q", "options": ["x", "y"], "correct": 0}`, &scriptFetcher{})
	engine.Start()
	defer engine.Close()

	before := engine.State()
	assert.False(t, r.HandleCommand(fetcher.ParseCommand("e")))
	assert.Equal(t, before, engine.State())
}

func TestHandleCommand_HelpUnknownQuit(t *testing.T) {
	r, _, _, buf := newTestRunner(t, twoQuestions, &scriptFetcher{})

	assert.False(t, r.HandleCommand(fetcher.ParseCommand("h")))
	assert.False(t, r.HandleCommand(fetcher.ParseCommand("xyz")))
	assert.True(t, r.HandleCommand(fetcher.ParseCommand("quit")))

	out := buf.String()
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, `Unknown command "xyz"`)
}

func TestRun_WithLineFetcherAndSystemClock(t *testing.T) {
	q, err := quiz.LoadQuiz([]byte(`{"title": "T", "questions": [` + twoQuestions + `]}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	out := sender.NewTerminalSender(&buf, false)
	engine := quiz.NewEngine(q, out, clock.NewSystem(), quiz.Settings{})
	r := NewRunner(fetcher.NewLineFetcher(strings.NewReader("a\ns\nn\nb\ns\nn\nq\n")), engine, out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, r.Run(ctx))
	assert.Equal(t, 2, engine.State().Score)
	assert.Contains(t, buf.String(), "Accuracy: 100%")
}

package quiz

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/letsssgooo/quizRunner/internal/clock"
)

// Engine — конечный автомат квиза: отрисовка вопроса, выбор, раскрытие ответа, переход.
//
// Все переходы выполняются под мьютексом. Каждый таймер запоминает поколение,
// в котором был поставлен, и его колбэк ничего не делает, если поколение сменилось.
// Поколение увеличивается при любой остановке таймеров.
type Engine struct {
	quiz      *Quiz
	presenter Presenter
	clock     clock.Clock
	settings  Settings

	mu          sync.Mutex
	state       state
	countdown   clock.Timer
	autoAdvance clock.Timer
	generation  uint64
}

type state struct {
	runID     string
	phase     Phase
	index     int
	selected  int
	score     int
	remaining int
	locked    bool
}

// NewEngine создаёт движок. Квиз должен быть получен через LoadQuiz.
func NewEngine(quiz *Quiz, presenter Presenter, clk clock.Clock, settings Settings) *Engine {
	if settings.AutoAdvanceDelay <= 0 {
		settings.AutoAdvanceDelay = DefaultAutoAdvanceDelay
	}

	return &Engine{
		quiz:      quiz,
		presenter: presenter,
		clock:     clk,
		settings:  settings,
		state:     state{phase: PhaseIdle, selected: NoSelection},
	}
}

// Start запускает квиз с первого вопроса.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.restart()
	slog.Info("quiz started", "run_id", e.state.runID, "title", e.quiz.Title, "questions", len(e.quiz.Questions))
}

// Reset полностью пересоздаёт состояние, как Start. Допустим из любого состояния.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	previous := e.state.runID
	e.restart()
	slog.Info("quiz reset", "run_id", e.state.runID, "previous_run_id", previous)
}

// Close останавливает все таймеры.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTimers()
}

// SelectOption запоминает предварительный выбор. Последний выбор побеждает.
func (e *Engine) SelectOption(option int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.phase != PhaseAnswering || e.state.locked {
		return
	}

	if option < 0 || option >= len(e.current().Options) {
		slog.Debug("option out of range", "run_id", e.state.runID, "option", option)
		return
	}

	e.state.selected = option
	e.presenter.MarkSelected(option)
}

// Submit раскрывает ответ на текущий вопрос, если вариант выбран.
func (e *Engine) Submit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.phase != PhaseAnswering || e.state.selected == NoSelection {
		return
	}

	e.reveal(e.state.selected, false)
}

// Tick уменьшает оставшееся время на секунду. Вызывается обратным отсчётом.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tick()
}

// Advance переходит к следующему вопросу или к итогам. Действует только после раскрытия ответа.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.advance()
}

// State возвращает копию текущего состояния.
func (e *Engine) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		RunID:     e.state.runID,
		Phase:     e.state.phase,
		Index:     e.state.index,
		Total:     len(e.quiz.Questions),
		Selected:  e.state.selected,
		Score:     e.state.score,
		Remaining: e.state.remaining,
		Locked:    e.state.locked,
	}
}

func (e *Engine) restart() {
	e.stopTimers()

	e.state = state{
		runID:    uuid.NewString(),
		index:    0,
		selected: NoSelection,
	}
	e.enterQuestion()
}

func (e *Engine) current() Question {
	return e.quiz.Questions[e.state.index]
}

// enterQuestion показывает вопрос state.index и запускает обратный отсчёт.
func (e *Engine) enterQuestion() {
	total := len(e.quiz.Questions)

	e.state.phase = PhaseAnswering
	e.state.selected = NoSelection
	e.state.locked = false
	e.state.remaining = int(Period / time.Second)

	progress := e.state.index * 100 / total
	position := fmt.Sprintf("Q%d / %d", e.state.index+1, total)

	e.presenter.RenderQuestion(e.current(), position, progress)
	e.presenter.SetProgress(progress)
	e.presenter.SetTimerDisplay(FormatSeconds(e.state.remaining))

	generation := e.generation
	e.countdown = e.clock.Every(TickInterval, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if generation != e.generation {
			return
		}
		e.tick()
	})

	slog.Debug("question rendered", "run_id", e.state.runID, "question", e.state.index)
}

func (e *Engine) tick() {
	if e.state.phase != PhaseAnswering {
		return
	}

	if e.state.remaining > 0 {
		e.state.remaining--
	}
	e.presenter.SetTimerDisplay(FormatSeconds(e.state.remaining))

	if e.state.remaining == 0 {
		slog.Debug("question timed out", "run_id", e.state.runID, "question", e.state.index)
		e.reveal(NoSelection, true)
	}
}

// reveal фиксирует ответ. При таймауте ставит отложенный переход.
func (e *Engine) reveal(chosen int, timedOut bool) {
	if e.state.locked {
		return
	}

	e.stopTimers()

	e.state.locked = true
	e.state.phase = PhaseRevealed

	q := e.current()
	correct := chosen != NoSelection && chosen == q.Correct
	if correct {
		e.state.score++
	}

	e.presenter.RevealAnswer(q.Correct, chosen)

	slog.Info("answer revealed",
		"run_id", e.state.runID,
		"question", e.state.index,
		"chosen", chosen,
		"correct", correct,
		"timed_out", timedOut,
		"score", e.state.score,
	)

	if !timedOut {
		return
	}

	generation := e.generation
	e.autoAdvance = e.clock.AfterFunc(e.settings.AutoAdvanceDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if generation != e.generation {
			return
		}
		e.autoAdvance = nil
		e.advance()
	})
}

func (e *Engine) advance() {
	if e.state.phase != PhaseRevealed {
		return
	}

	e.stopTimers()

	total := len(e.quiz.Questions)
	if e.state.index+1 == total {
		e.finish()
		return
	}

	e.state.index++
	e.enterQuestion()
}

func (e *Engine) finish() {
	total := len(e.quiz.Questions)

	e.state.index = total
	e.state.phase = PhaseFinished
	e.state.selected = NoSelection

	percent := Percent(e.state.score, total)

	e.presenter.SetProgress(100)
	e.presenter.ShowResults(e.state.score, total, percent)

	slog.Info("quiz finished", "run_id", e.state.runID, "score", e.state.score, "total", total, "percent", percent)
}

// stopTimers отменяет обратный отсчёт и отложенный переход и инвалидирует их колбэки.
func (e *Engine) stopTimers() {
	e.generation++

	if e.countdown != nil {
		e.countdown.Stop()
		e.countdown = nil
	}

	if e.autoAdvance != nil {
		e.autoAdvance.Stop()
		e.autoAdvance = nil
	}
}

// Percent возвращает долю правильных ответов в процентах, округлённую до целого.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(float64(score) / float64(total) * 100))
}

// FormatSeconds форматирует секунды как MM:SS.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package quiz

import (
	"errors"
	"time"
)

// Period — время на один вопрос.
const Period = 300 * time.Second

// TickInterval — шаг обратного отсчёта.
const TickInterval = time.Second

// DefaultAutoAdvanceDelay — пауза перед автоматическим переходом после таймаута.
const DefaultAutoAdvanceDelay = 1200 * time.Millisecond

// NoSelection означает, что вариант ответа не выбран.
const NoSelection = -1

// ErrInvalidQuiz возвращается, если квиз не прошёл валидацию.
var ErrInvalidQuiz = errors.New("invalid quiz")

// Quiz представляет загруженный квиз.
type Quiz struct {
	ID        string
	Title     string
	Questions []Question
}

// Question представляет вопрос квиза.
type Question struct {
	Text    string
	Options []string
	Correct int
	Image   *Image
	Hint    string
}

// Image — картинка к вопросу.
type Image struct {
	URL     string
	Caption string
}

// Settings содержит настройки движка.
type Settings struct {
	// AutoAdvanceDelay — пауза между таймаутом и переходом к следующему вопросу.
	// Ноль означает DefaultAutoAdvanceDelay.
	AutoAdvanceDelay time.Duration
}

// Phase — состояние вопроса.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseAnswering Phase = "answering"
	PhaseRevealed  Phase = "revealed"
	PhaseFinished  Phase = "finished"
)

// Snapshot — копия состояния движка.
type Snapshot struct {
	RunID     string
	Phase     Phase
	Index     int
	Total     int
	Selected  int
	Score     int
	Remaining int
	Locked    bool
}

// Presenter отрисовывает квиз. Вызывается движком под его мьютексом,
// поэтому не должен обращаться к движку обратно.
type Presenter interface {
	// RenderQuestion рисует вопрос и сбрасывает выделение.
	RenderQuestion(q Question, position string, progress int)

	// MarkSelected отмечает предварительный выбор и включает отправку ответа.
	MarkSelected(option int)

	// RevealAnswer подсвечивает правильный вариант и, если ответ неверный, выбранный.
	// chosen равен NoSelection, если время вышло.
	RevealAnswer(correct, chosen int)

	// ShowResults показывает итог.
	ShowResults(score, total, percent int)

	// SetTimerDisplay показывает оставшееся время в формате MM:SS.
	SetTimerDisplay(mmss string)

	// SetProgress показывает прогресс в процентах.
	SetProgress(percent int)
}

// AnswerLetters — допустимые буквы для ответов (A-F для до 6 вариантов).
var AnswerLetters = []string{"A", "B", "C", "D", "E", "F"}

// LetterToIndex преобразует букву в индекс (A=0, B=1, ...).
func LetterToIndex(letter string) (int, bool) {
	for i, l := range AnswerLetters {
		if l == letter {
			return i, true
		}
	}

	return -1, false
}

// IndexToLetter преобразует индекс в букву (0=A, 1=B, ...).
func IndexToLetter(idx int) string {
	if idx >= 0 && idx < len(AnswerLetters) {
		return AnswerLetters[idx]
	}

	return ""
}

package sender

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizRunner/internal/quiz"
)

const progressWidth = 20

// TerminalSender реализует Sender, печатая квиз построчно в io.Writer.
type TerminalSender struct {
	out      io.Writer
	mu       sync.Mutex
	question quiz.Question
	progress int
	timer    string

	title   *color.Color
	accent  *color.Color
	good    *color.Color
	bad     *color.Color
	muted   *color.Color
	warning *color.Color
}

// NewTerminalSender создаёт TerminalSender. colors=false отключает ANSI-цвета.
func NewTerminalSender(out io.Writer, colors bool) *TerminalSender {
	newColor := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}

	return &TerminalSender{
		out:     out,
		title:   newColor(color.Bold),
		accent:  newColor(color.FgCyan, color.Bold),
		good:    newColor(color.FgGreen),
		bad:     newColor(color.FgRed),
		muted:   newColor(color.FgHiBlack),
		warning: newColor(color.FgYellow),
	}
}

// RenderQuestion печатает вопрос, картинку, варианты и подсказку.
func (s *TerminalSender) RenderQuestion(q quiz.Question, position string, progress int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.question = q
	s.progress = progress
	s.timer = ""

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "%s %s\n", s.accent.Sprintf("[%s]", position), s.muted.Sprint(progressBar(progress)))
	fmt.Fprintln(s.out, s.title.Sprint(q.Text))

	if q.Image != nil {
		caption := q.Image.Caption
		if caption == "" {
			caption = "Question image"
		}
		fmt.Fprintf(s.out, "  %s %s\n", s.muted.Sprint("[image]"), caption)
		fmt.Fprintf(s.out, "  %s\n", s.muted.Sprint(q.Image.URL))
	}

	for i, option := range q.Options {
		fmt.Fprintf(s.out, "  %s) %s\n", quiz.IndexToLetter(i), option)
	}

	if q.Hint != "" {
		fmt.Fprintln(s.out, s.muted.Sprint("Hint: "+q.Hint))
	}

	fmt.Fprintln(s.out, msgSubmitHint)
}

// MarkSelected подтверждает предварительный выбор.
func (s *TerminalSender) MarkSelected(option int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, s.accent.Sprintf(msgSelected, quiz.IndexToLetter(option)))
}

// RevealAnswer печатает правильный ответ и, если ответ неверный, выбранный.
func (s *TerminalSender) RevealAnswer(correct, chosen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case chosen == quiz.NoSelection:
		fmt.Fprintln(s.out, s.warning.Sprint(msgTimeUp))
	case chosen == correct:
		fmt.Fprintln(s.out, s.good.Sprint(msgCorrect))
	default:
		fmt.Fprintln(s.out, s.bad.Sprintf(msgWrong, quiz.IndexToLetter(chosen), s.option(chosen)))
	}

	fmt.Fprintln(s.out, s.good.Sprintf(msgCorrectAnswer, quiz.IndexToLetter(correct), s.option(correct)))

	if chosen == quiz.NoSelection {
		fmt.Fprintln(s.out, s.muted.Sprint(msgAutoAdvance))
		return
	}
	fmt.Fprintln(s.out, msgAdvanceHint)
}

// ShowResults печатает итог.
func (s *TerminalSender) ShowResults(score, total, percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.muted.Sprint(progressBar(s.progress)))
	fmt.Fprintln(s.out, s.title.Sprintf(msgScore, score, total))
	fmt.Fprintln(s.out, s.accent.Sprintf(msgAccuracy, percent))
	fmt.Fprintln(s.out, msgRetry)
}

// SetTimerDisplay печатает время на каждой целой минуте и в последние 10 секунд,
// чтобы не засорять терминал ежесекундным выводом.
func (s *TerminalSender) SetTimerDisplay(mmss string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mmss == s.timer {
		return
	}
	s.timer = mmss

	var minutes, seconds int
	if _, err := fmt.Sscanf(mmss, "%d:%d", &minutes, &seconds); err != nil {
		return
	}

	switch {
	case minutes == 0 && seconds <= 10:
		fmt.Fprintln(s.out, s.warning.Sprintf("Time left: %s", mmss))
	case seconds == 0:
		fmt.Fprintln(s.out, s.muted.Sprintf("Time left: %s", mmss))
	}
}

// SetProgress запоминает прогресс для следующей отрисовки.
func (s *TerminalSender) SetProgress(percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress = percent
}

// Notice выводит служебное сообщение.
func (s *TerminalSender) Notice(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, s.warning.Sprint(text))
}

// Help выводит список команд.
func (s *TerminalSender) Help() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, msgHelp)
}

func (s *TerminalSender) option(idx int) string {
	if idx < 0 || idx >= len(s.question.Options) {
		return ""
	}
	return s.question.Options[idx]
}

func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * progressWidth / 100

	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("#", filled), strings.Repeat(".", progressWidth-filled), percent)
}

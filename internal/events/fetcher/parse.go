package fetcher

import (
	"strconv"
	"strings"

	"github.com/letsssgooo/quizRunner/internal/quiz"
)

var keywords = map[string]CommandType{
	"s":      CommandSubmit,
	"submit": CommandSubmit,
	"n":      CommandNext,
	"next":   CommandNext,
	"r":      CommandReset,
	"retry":  CommandReset,
	"reset":  CommandReset,
	"h":      CommandHelp,
	"help":   CommandHelp,
	"?":      CommandHelp,
	"q":      CommandQuit,
	"quit":   CommandQuit,
	"exit":   CommandQuit,
}

// ParseCommand разбирает строку ввода.
// Буква (A-F) или номер (1-6) выбирают вариант, остальное — ключевые слова.
func ParseCommand(line string) Command {
	raw := line
	line = strings.ToLower(strings.TrimSpace(line))

	if t, ok := keywords[line]; ok {
		return Command{Type: t, Raw: raw}
	}

	if idx, ok := quiz.LetterToIndex(strings.ToUpper(line)); ok {
		return Command{Type: CommandSelect, Option: idx, Raw: raw}
	}

	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(quiz.AnswerLetters) {
		return Command{Type: CommandSelect, Option: n - 1, Raw: raw}
	}

	return Command{Type: CommandUnknown, Raw: raw}
}

package fetcher

import "context"

// Fetcher определяет основной интерфейс для получения команд пользователя.
type Fetcher interface {
	// Next блокируется до следующей команды. io.EOF означает конец ввода.
	Next(ctx context.Context) (Command, error)
}

// CommandType — тип команды.
type CommandType string

const (
	CommandSelect  CommandType = "select"
	CommandSubmit  CommandType = "submit"
	CommandNext    CommandType = "next"
	CommandReset   CommandType = "reset"
	CommandHelp    CommandType = "help"
	CommandQuit    CommandType = "quit"
	CommandUnknown CommandType = "unknown"
)

// Command — одно действие пользователя.
type Command struct {
	Type CommandType
	// Option — индекс варианта для CommandSelect.
	Option int
	// Raw — исходная строка.
	Raw string
}

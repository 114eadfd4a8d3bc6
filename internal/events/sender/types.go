package sender

import "github.com/letsssgooo/quizRunner/internal/quiz"

// Sender определяет основной интерфейс для вывода квиза пользователю.
type Sender interface {
	quiz.Presenter

	// Notice выводит служебное сообщение.
	Notice(text string)

	// Help выводит список команд.
	Help()
}

package storage

import (
	"context"
	"errors"

	"github.com/letsssgooo/quizRunner/internal/quiz"
)

// ErrNotFound возвращается, если источник не содержит запрошенного квиза.
var ErrNotFound = errors.New("quiz not found")

// Storage определяет источник квиза. Квиз читается один раз при старте.
type Storage interface {
	// GetQuiz загружает и проверяет квиз.
	GetQuiz(ctx context.Context) (*quiz.Quiz, error)
}

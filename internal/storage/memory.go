package storage

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/letsssgooo/quizRunner/internal/quiz"
)

//go:embed builtin.json
var builtinQuiz []byte

// MemoryStorage реализует Storage поверх JSON в памяти.
type MemoryStorage struct {
	name string
	data []byte
}

// NewMemoryStorage создаёт MemoryStorage из готового JSON.
func NewMemoryStorage(name string, data []byte) *MemoryStorage {
	return &MemoryStorage{name: name, data: data}
}

// NewBuiltinStorage возвращает встроенный квиз по делению клетки.
func NewBuiltinStorage() *MemoryStorage {
	return NewMemoryStorage("builtin", builtinQuiz)
}

// GetQuiz возвращает квиз.
func (s *MemoryStorage) GetQuiz(ctx context.Context) (*quiz.Quiz, error) {
	if len(s.data) == 0 {
		return nil, fmt.Errorf("%s: %w", s.name, ErrNotFound)
	}

	q, err := quiz.LoadQuiz(s.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}

	return q, nil
}

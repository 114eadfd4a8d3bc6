package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/letsssgooo/quizRunner/internal/quiz"
)

// FileStorage читает квиз из JSON-файла.
type FileStorage struct {
	path string
}

// NewFileStorage создаёт FileStorage.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// GetQuiz читает файл и возвращает квиз.
func (s *FileStorage) GetQuiz(ctx context.Context) (*quiz.Quiz, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file %s: %w", s.path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", s.path, err)
	}

	return NewMemoryStorage("file "+s.path, data).GetQuiz(ctx)
}

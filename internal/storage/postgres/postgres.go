package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/letsssgooo/quizRunner/internal/domain/models"
	"github.com/letsssgooo/quizRunner/internal/quiz"
	"github.com/letsssgooo/quizRunner/internal/storage"
)

// Storage читает квизы из таблицы quizzes:
//
//	CREATE TABLE quizzes (
//		id              SERIAL PRIMARY KEY,
//		name            TEXT NOT NULL,
//		file            BYTEA NOT NULL,
//		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
//		author_username TEXT NOT NULL DEFAULT ''
//	);
type Storage struct {
	pool *pgxpool.Pool
	name string
}

// NewStorage подключается к базе. name — имя квиза, который вернёт GetQuiz.
func NewStorage(ctx context.Context, dsn, name string) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool, name: name}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.pool.Close()
}

// GetQuizFile возвращает самую свежую версию файла квиза с именем name.
func (s *Storage) GetQuizFile(ctx context.Context, name string) (*models.QuizFileModel, error) {
	query := `
	SELECT id, name, file, created_at, author_username
	FROM quizzes
	WHERE name = $1
	ORDER BY created_at DESC
	LIMIT 1
	`

	var m models.QuizFileModel
	err := s.pool.QueryRow(ctx, query, name).Scan(&m.ID, &m.Name, &m.File, &m.CreatedAt, &m.AuthorUsername)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("postgres quiz %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres quiz %q: %w", name, err)
	}

	return &m, nil
}

// GetQuiz загружает квиз, имя которого передано в NewStorage.
func (s *Storage) GetQuiz(ctx context.Context) (*quiz.Quiz, error) {
	m, err := s.GetQuizFile(ctx, s.name)
	if err != nil {
		return nil, err
	}

	return storage.NewMemoryStorage(fmt.Sprintf("postgres quiz %q", m.Name), m.File).GetQuiz(ctx)
}

package models

import (
	"time"
)

// Файл для работы с моделями для базы данных, которые доступны извне.
// Хранилище заполняет модель из строки таблицы и отдаёт её наружу.

// QuizFileModel определяет модель для таблицы с файлами квизов
type QuizFileModel struct {
	ID             int
	Name           string
	File           []byte
	CreatedAt      time.Time
	AuthorUsername string
}

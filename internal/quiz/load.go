package quiz

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// LoadQuiz парсит JSON и создаёт квиз.
// Некорректные данные отклоняются сразу, с описанием первой найденной ошибки.
func LoadQuiz(data []byte) (*Quiz, error) {
	dto := &quizDTO{}
	if err := json.Unmarshal(data, dto); err != nil {
		return nil, fmt.Errorf("can not load quiz: %w", err)
	}

	if err := isCorrectQuiz(dto); err != nil {
		return nil, fmt.Errorf("can not load quiz, %w: %w", ErrInvalidQuiz, err)
	}

	quiz := &Quiz{
		ID:        uuid.NewString(),
		Title:     dto.Title,
		Questions: make([]Question, 0, len(dto.Questions)),
	}

	for _, q := range dto.Questions {
		question := Question{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
			Correct: *q.Correct,
			Hint:    q.Hint,
		}
		if q.Image != nil {
			question.Image = &Image{URL: q.Image.URL, Caption: q.Image.Caption}
		}

		quiz.Questions = append(quiz.Questions, question)
	}

	return quiz, nil
}

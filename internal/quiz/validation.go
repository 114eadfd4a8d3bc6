package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// quizDTO и questionDTO описывают JSON квиза до проверки.
// Correct — указатель, чтобы отличить отсутствующее поле от нуля.
type quizDTO struct {
	Title     string        `json:"title" validate:"required"`
	Questions []questionDTO `json:"questions" validate:"required,min=1"`
}

type questionDTO struct {
	Text    string    `json:"text" validate:"required"`
	Options []string  `json:"options" validate:"required,min=2,max=6,dive,required"`
	Correct *int      `json:"correct" validate:"required"`
	Image   *imageDTO `json:"image"`
	Hint    string    `json:"hint"`
}

type imageDTO struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В сообщениях об ошибках используем имена из JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// isCorrectQuiz проверяет на корректность структуру квиза
func isCorrectQuiz(dto *quizDTO) error {
	if err := validate.Struct(dto); err != nil {
		return describe(err)
	}

	for i := range dto.Questions {
		question := &dto.Questions[i]

		if err := validate.Struct(question); err != nil {
			return fmt.Errorf("%w of %d question", describe(err), i)
		}

		if *question.Correct < 0 {
			return fmt.Errorf("index of correct answer must not be negative in %d question", i)
		}

		if *question.Correct >= len(question.Options) {
			return fmt.Errorf("index of correct answer in %d question is out of range", i)
		}

		if question.Image != nil && question.Image.URL == "" {
			return fmt.Errorf("missing field image.url of %d question", i)
		}
	}

	return nil
}

// describe превращает первую ошибку валидатора в читаемое сообщение.
func describe(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}

	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("missing field %s", fe.Field())
	case "min":
		return fmt.Errorf("field %s must contain at least %s items", fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("field %s must contain at most %s items", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("field %s failed on %s", fe.Field(), fe.Tag())
	}
}

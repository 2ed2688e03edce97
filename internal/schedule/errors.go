package schedule

import "errors"

// ValidationError локальная ошибка валидации, текст показывается
// пользователю как есть, без переинтерпретации
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Фиксированные ошибки валидации. Проверки идут строго в порядке:
// заполненность полей -> порядок времени -> пересечение; пользователю
// показывается только первая сработавшая.
var (
	ErrFieldsMissing  = &ValidationError{Message: "Please fill in all fields"}
	ErrEndBeforeStart = &ValidationError{Message: "End time must be after start time"}
	ErrSlotOverlap    = &ValidationError{Message: "This slot overlaps with an existing slot"}
)

// IsValidation проверяет является ли ошибка локальной ошибкой валидации
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

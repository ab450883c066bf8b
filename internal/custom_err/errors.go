package custom_err

import "errors"

// Проверяются через errors.Is() на границе handler/service.
var (
	ErrNotFound = errors.New("запись не найдена")
	ErrConflict = errors.New("нарушение уникальности")
)

// ValidationError несёт имя поля, чтобы handler мог отдать осмысленный 422.
// Message уходит клиенту как есть, поэтому пишется по-английски.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

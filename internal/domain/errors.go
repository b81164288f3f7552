package domain

import "errors"

// Категории ошибок ядра
// Ошибки usecase/service оборачивают одну из них, поэтому вызывающий код может
// проверять как конкретную ошибку, так и категорию через errors.Is
var (
	// ErrValidation отсутствует или некорректно обязательное поле
	ErrValidation = errors.New("validation error")

	// ErrConflict нарушение уникальности, пересечение расписания или устаревшее состояние
	ErrConflict = errors.New("conflict")

	// ErrPermission у пользователя нет прав на объект
	ErrPermission = errors.New("permission denied")

	// ErrNotFound объект не найден
	ErrNotFound = errors.New("not found")

	// ErrPersistence ошибка хранилища, не попавшая в другие категории
	ErrPersistence = errors.New("persistence error")

	// ErrInvalidAction неизвестное действие или решение
	ErrInvalidAction = errors.New("invalid action")
)

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string
	Message string
}

// NewFieldError создаёт ошибку валидации поля
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Unwrap позволяет проверять FieldError через errors.Is(err, ErrValidation)
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// Category метка категории ошибки для метрик ("ok" для nil)
func Category(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrPermission):
		return "permission"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidAction):
		return "invalid_action"
	default:
		return "internal"
	}
}

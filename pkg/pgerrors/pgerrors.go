package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые классифицируются отдельно
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeExclusionViolation   = "23P01"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// AsPQ извлекает *pq.Error из цепочки ошибок
func AsPQ(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

// IsUniqueViolation проверяет нарушение уникальности
// Если constraint не пустой, проверяется и имя ограничения
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, CodeUniqueViolation, constraint)
}

// IsExclusionViolation проверяет нарушение EXCLUDE-ограничения
func IsExclusionViolation(err error, constraint string) bool {
	return is(err, CodeExclusionViolation, constraint)
}

// IsForeignKeyViolation проверяет нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return is(err, CodeForeignKeyViolation, "")
}

// IsRetryable возвращает true для ошибок, после которых транзакцию можно повторить
func IsRetryable(err error) bool {
	return is(err, CodeSerializationFailure, "") || is(err, CodeDeadlockDetected, "")
}

func is(err error, code string, constraint string) bool {
	pqErr, ok := AsPQ(err)
	if !ok {
		return false
	}
	if string(pqErr.Code) != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

package reniec

import "errors"

var (
	// ErrPersonNotFound DNI не найден в RENIEC
	ErrPersonNotFound = errors.New("reniec client: national id not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reniec client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("reniec client: invalid response")
)

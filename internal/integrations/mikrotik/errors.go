package mikrotik

import "errors"

var (
	// ErrUnauthorized неверные учётные данные роутера
	ErrUnauthorized = errors.New("mikrotik client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mikrotik client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе роутера
	ErrInvalidResponse = errors.New("mikrotik client: invalid response")
)

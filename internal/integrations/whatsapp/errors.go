package whatsapp

import "errors"

var (
	// ErrNotConfigured не заданы токен или phone number id
	ErrNotConfigured = errors.New("whatsapp client: credentials not configured")

	// ErrEmptyRecipient не указан номер получателя
	ErrEmptyRecipient = errors.New("whatsapp client: empty recipient number")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")
)

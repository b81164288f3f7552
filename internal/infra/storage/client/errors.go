package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrDuplicateNationalID клиент с таким DNI уже существует
	ErrDuplicateNationalID = errors.New("client.repository: national id already registered")

	// ErrDuplicateCode код клиента уже занят
	ErrDuplicateCode = errors.New("client.repository: client code already taken")

	// ErrPaymentStateConflict состояние оплаты изменилось конкурентно
	ErrPaymentStateConflict = errors.New("client.repository: payment state changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("client.repository: failed to scan row")
)

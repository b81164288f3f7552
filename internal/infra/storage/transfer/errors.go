package transfer

import "errors"

var (
	// ErrTransferNotFound возвращается, когда запрос передачи не найден
	ErrTransferNotFound = errors.New("transfer.repository: transfer request not found")

	// ErrAlreadyResolved запрос уже принят или отклонён
	ErrAlreadyResolved = errors.New("transfer.repository: transfer request already resolved")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("transfer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("transfer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("transfer.repository: failed to scan row")
)

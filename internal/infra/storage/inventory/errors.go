package inventory

import "errors"

var (
	// ErrItemNotFound возвращается, когда оборудование не найдено
	ErrItemNotFound = errors.New("inventory.repository: item not found")

	// ErrDuplicateSerial серийный номер уже зарегистрирован
	ErrDuplicateSerial = errors.New("inventory.repository: serial number already registered")

	// ErrNotAvailable оборудование уже установлено
	ErrNotAvailable = errors.New("inventory.repository: item is not available")

	// ErrItemInUse оборудование привязано к инсталляции
	ErrItemInUse = errors.New("inventory.repository: item is linked to an installation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)

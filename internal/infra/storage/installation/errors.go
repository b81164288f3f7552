package installation

import "errors"

var (
	// ErrInstallationNotFound возвращается, когда инсталляция не найдена
	ErrInstallationNotFound = errors.New("installation.repository: installation not found")

	// ErrStatusConflict статус инсталляции не допускает переход (изменён конкурентно или финальный)
	ErrStatusConflict = errors.New("installation.repository: installation status does not allow transition")

	// ErrEquipmentAlreadyUsed оборудование уже привязано к другой инсталляции
	ErrEquipmentAlreadyUsed = errors.New("installation.repository: equipment already linked to another installation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("installation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("installation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("installation.repository: failed to scan row")

	// ErrEncodePhotos ошибка сериализации списка фотографий
	ErrEncodePhotos = errors.New("installation.repository: failed to encode photos")
)

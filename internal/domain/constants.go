package domain

// Генерация кода клиента
const (
	// ClientCodePrefix префикс кодов клиентов провайдера
	ClientCodePrefix = "5"

	// FirstClientCodeNumber номер первого клиента, если кодов с префиксом ещё нет
	FirstClientCodeNumber = 5000

	// ProvisioningPasswordLength длина PPPoE-пароля
	ProvisioningPasswordLength = 8
)

// Бизнес-ограничения
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
	MaxPhotos            = 20
	MaxSearchResults     = 50
)

// Форматы времени
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // для сообщений клиентам
)

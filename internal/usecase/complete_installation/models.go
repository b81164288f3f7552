package complete_installation

import "time"

// Request модель запроса на завершение инсталляции
type Request struct {
	InstallationID   int64
	TechnicianID     int64    // Текущий пользователь
	EquipmentID      int64    // Установленное оборудование со склада
	Photos           []string // URL фотографий, минимум одна
	Latitude         string
	Longitude        string
	FinalDescription *string
	PaymentMethod    *string
	TransactionRef   *string
}

// Response модель ответа после завершения
type Response struct {
	InstallationID int64
	TaskID         int64
	EquipmentID    int64
	Status         string
	GPS            string
	CompletedAt    time.Time
}

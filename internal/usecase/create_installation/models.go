package create_installation

import "time"

// Request модель запроса на создание инсталляции
type Request struct {
	Name        string  // Тип работ ("Fibra óptica", "Antena")
	Description *string // Описание (опционально)
	Location    *string // "lat,long" или ориентир
	ImageURL    *string // Ссылка на изображение (опционально)
	RequestedAt *time.Time

	ClientNationalID string  // DNI клиента
	ClientName       string  // Имя клиента
	ClientPhone      *string // Телефон клиента
	ClientAddress    *string // Адрес клиента
	ClientPlan       *string // Тарифный план

	TechnicianID int64 // Назначаемый техник
	AdminID      int64 // Администратор, создающий заявку
}

// Response модель ответа с созданной инсталляцией
type Response struct {
	InstallationID int64
	TaskID         int64
	ClientID       int64
	ClientCode     *string
	Status         string
	TaskStatus     string
	CreatedAt      time.Time
}

package domain

import "time"

// InstallationStatus represents the status of an installation
type InstallationStatus string

const (
	InstallationPending   InstallationStatus = "Pendiente"
	InstallationAssigned  InstallationStatus = "Asignado"
	InstallationCompleted InstallationStatus = "Completado"
)

// Installation represents a physical service setup job for one client
type Installation struct {
	ID           int64
	ClientID     int64
	Name         string // тип работ: "Fibra óptica", "Antena", ...
	Description  *string
	Location     *string // "lat,long" или ориентир
	ImageURL     *string
	Status       InstallationStatus
	TechnicianID *int64
	RequestedAt  *time.Time

	// Результат выполнения
	FinalDescription *string
	FinalGPS         *string
	Photos           []string
	CompletedAt      *time.Time
	PaymentMethod    *string
	TransactionRef   *string
	EquipmentID      *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the installation reached its terminal state
func (i *Installation) IsCompleted() bool {
	return i.Status == InstallationCompleted
}

// CanBeAssigned returns true if a technician can still be (re)assigned
func (i *Installation) CanBeAssigned() bool {
	return i.Status == InstallationPending || i.Status == InstallationAssigned
}

// CompletionEvidence данные, которые техник фиксирует при завершении
type CompletionEvidence struct {
	FinalDescription *string
	GPS              string // "lat,long"
	Photos           []string
	CompletedAt      time.Time
	PaymentMethod    *string
	TransactionRef   *string
	EquipmentID      int64
}

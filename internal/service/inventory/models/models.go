package models

import (
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// AddItemRequest регистрация оборудования на складе
type AddItemRequest struct {
	SerialNumber string `json:"numeroSerie"`
	Model        string `json:"modelo"`
}

// UpdateItemRequest ручная правка оборудования администратором
type UpdateItemRequest struct {
	SerialNumber string `json:"numeroSerie"`
	Model        string `json:"modelo"`
	State        string `json:"estado"`
}

// ItemResponse оборудование в ответах API
type ItemResponse struct {
	ID           int64      `json:"id"`
	SerialNumber string     `json:"numeroSerie"`
	Model        string     `json:"modelo"`
	State        string     `json:"estado"`
	ReceivedOn   string     `json:"fechaIngreso"`
	InstalledAt  *time.Time `json:"fechaInstalacion,omitempty"`
}

// FromDomainItem конвертирует domain.InventoryItem в ответ API
func FromDomainItem(item *domain.InventoryItem) *ItemResponse {
	return &ItemResponse{
		ID:           item.ID,
		SerialNumber: item.SerialNumber,
		Model:        item.Model,
		State:        string(item.State),
		ReceivedOn:   item.ReceivedOn.Format(domain.DateFormat),
		InstalledAt:  item.InstalledAt,
	}
}

// FromDomainItemList конвертирует список оборудования
func FromDomainItemList(items []*domain.InventoryItem) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromDomainItem(item))
	}
	return out
}

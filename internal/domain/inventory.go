package domain

import (
	"fmt"
	"time"
)

// ItemState represents the state of an inventory item
type ItemState string

const (
	ItemAvailable ItemState = "Disponible"
	ItemInstalled ItemState = "Instalado"
)

// ParseItemState проверяет состояние оборудования
func ParseItemState(s string) (ItemState, error) {
	switch ItemState(s) {
	case ItemAvailable, ItemInstalled:
		return ItemState(s), nil
	default:
		return "", NewFieldError("estado", fmt.Sprintf("unknown inventory state %q", s))
	}
}

// InventoryItem serialized equipment unit (router, ONU)
type InventoryItem struct {
	ID           int64
	SerialNumber string
	Model        string
	State        ItemState
	ReceivedOn   time.Time
	InstalledAt  *time.Time
}

// IsAvailable returns true if the item can be consumed by a completion
func (i *InventoryItem) IsAvailable() bool {
	return i.State == ItemAvailable
}

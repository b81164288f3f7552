package add_inventory_item

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
)

type InventoryService interface {
	AddItem(ctx context.Context, req models.AddItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

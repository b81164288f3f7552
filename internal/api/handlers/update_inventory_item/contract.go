package update_inventory_item

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
)

type InventoryService interface {
	UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

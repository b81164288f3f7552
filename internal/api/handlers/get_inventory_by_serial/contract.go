package get_inventory_by_serial

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
)

type InventoryService interface {
	GetBySerial(ctx context.Context, serial string) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

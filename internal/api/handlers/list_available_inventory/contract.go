package list_available_inventory

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
)

type InventoryService interface {
	ListAvailable(ctx context.Context) ([]*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

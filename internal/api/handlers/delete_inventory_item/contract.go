package delete_inventory_item

import "context"

type InventoryService interface {
	DeleteItem(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

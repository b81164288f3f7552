package get_technician_tasks

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/tasks/models"
)

type TaskService interface {
	ListTechnicianTasks(ctx context.Context, technicianID int64, states []string) ([]*models.TaskResponse, error)
	ListIncomingTransfers(ctx context.Context, recipientID int64) ([]*models.TransferResponse, error)
	TechnicianStats(ctx context.Context, technicianID int64) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

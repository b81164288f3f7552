package tasks

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	GetByTechnician(ctx context.Context, technicianID int64, statuses []domain.TaskStatus) ([]*domain.Task, error)
	CountByTechnician(ctx context.Context, technicianID int64) (map[domain.TaskStatus]int, error)
}

// TransferRepository интерфейс репозитория запросов передачи
type TransferRepository interface {
	GetPendingByRecipient(ctx context.Context, recipientID int64) ([]*domain.TransferRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package resolve_transfer

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// TransferRepository интерфейс репозитория запросов передачи
type TransferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TransferRequest, error)
	Resolve(ctx context.Context, id int64, status domain.TransferStatus) error
}

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.TaskStatus) error
	Reassign(ctx context.Context, id, fromTechnicianID, toTechnicianID int64, from, to domain.TaskStatus) error
}

// InstallationRepository интерфейс репозитория инсталляций
type InstallationRepository interface {
	Reassign(ctx context.Context, id, fromTechnicianID, toTechnicianID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics учёт исходов операций
type Metrics interface {
	ObserveOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

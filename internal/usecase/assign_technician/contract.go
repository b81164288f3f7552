package assign_technician

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// InstallationRepository интерфейс репозитория инсталляций
type InstallationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Installation, error)
	Assign(ctx context.Context, id, technicianID int64) error
}

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetActiveByInstallation(ctx context.Context, installationID int64) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.TaskStatus) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// UserRepository интерфейс репозитория сотрудников
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier асинхронная отправка уведомлений
type Notifier interface {
	Notify(recipient, text string)
}

// Metrics учёт исходов операций
type Metrics interface {
	ObserveOperation(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

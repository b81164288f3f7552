package create_installation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	clientModels "github.com/m04kA/SMC-FieldService/internal/service/clients/models"
)

// ClientRegistry поиск или создание клиента по DNI
type ClientRegistry interface {
	FindOrCreate(ctx context.Context, input clientModels.ClientInput) (*domain.Client, error)
}

// InstallationRepository интерфейс репозитория инсталляций
type InstallationRepository interface {
	Create(ctx context.Context, inst *domain.Installation) (*domain.Installation, error)
}

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
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

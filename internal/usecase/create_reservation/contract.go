package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// ReservationRepository интерфейс репозитория резервов
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByInstallationAndDate(ctx context.Context, installationID int64, date time.Time) ([]*domain.Reservation, error)
}

// InstallationRepository интерфейс репозитория инсталляций
// GetByID внутри транзакции блокирует строку (FOR UPDATE)
type InstallationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Installation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package cut_unpaid_clients

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetOverdue(ctx context.Context, today time.Time) ([]*domain.Client, error)
	UpdatePaymentState(ctx context.Context, id int64, from, to domain.PaymentState) error
}

// Deactivator API отключения услуги (AdL)
type Deactivator interface {
	Deactivate(ctx context.Context, name, onuSerial string) error
}

// Metrics учёт отключений
type Metrics interface {
	ObserveCutoff(status string)
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

package clients

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/integrations/mikrotik"
	"github.com/m04kA/SMC-FieldService/internal/integrations/reniec"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Client, error)
	LockCodeSequence(ctx context.Context) error
	GetLastCodeNumber(ctx context.Context, prefix string) (int, bool, error)
	Search(ctx context.Context, term string, limit int) ([]*domain.Client, error)
}

// NationalIDLookup интерфейс клиента RENIEC
type NationalIDLookup interface {
	Lookup(ctx context.Context, nationalID string) (*reniec.Person, error)
}

// NationalIDCache интерфейс кэша результатов RENIEC
type NationalIDCache interface {
	Get(ctx context.Context, nationalID string) (*reniec.Person, error)
	Set(ctx context.Context, person *reniec.Person) error
}

// RouterClient интерфейс клиента MikroTik
type RouterClient interface {
	ListSecrets(ctx context.Context) ([]mikrotik.Secret, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

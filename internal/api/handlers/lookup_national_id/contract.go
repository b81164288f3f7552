package lookup_national_id

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/clients/models"
)

type ClientService interface {
	LookupNationalID(ctx context.Context, nationalID string) (*models.PersonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package search_clients

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/clients/models"
)

type ClientService interface {
	Search(ctx context.Context, query string) ([]*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

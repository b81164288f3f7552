package search_router_users

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/clients/models"
)

type ClientService interface {
	SearchRouterUsers(ctx context.Context, query string) ([]models.RouterUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

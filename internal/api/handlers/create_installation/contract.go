package create_installation

import (
	"context"

	createInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/create_installation"
)

type CreateInstallationUseCase interface {
	Execute(ctx context.Context, req *createInstallation.Request) (*createInstallation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package complete_installation

import (
	"context"

	completeInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/complete_installation"
)

type CompleteInstallationUseCase interface {
	Execute(ctx context.Context, req *completeInstallation.Request) (*completeInstallation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package resolve_transfer

import (
	"context"

	resolveTransfer "github.com/m04kA/SMC-FieldService/internal/usecase/resolve_transfer"
)

type ResolveTransferUseCase interface {
	Execute(ctx context.Context, req *resolveTransfer.Request) (*resolveTransfer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

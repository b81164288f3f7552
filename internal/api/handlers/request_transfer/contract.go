package request_transfer

import (
	"context"

	requestTransfer "github.com/m04kA/SMC-FieldService/internal/usecase/request_transfer"
)

type RequestTransferUseCase interface {
	Execute(ctx context.Context, req *requestTransfer.Request) (*requestTransfer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

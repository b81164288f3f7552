package cut_unpaid_clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	clientRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

// Статусы для метрик
const (
	statusCut     = "cut"
	statusFailed  = "failed"
	statusSkipped = "skipped"
)

// UseCase отключение клиентов с просроченной оплатой
type UseCase struct {
	clientRepo   ClientRepository
	deactivator  Deactivator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clientRepo ClientRepository, deactivator Deactivator, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		clientRepo:   clientRepo,
		deactivator:  deactivator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отключает каждого клиента с fecha_proximo_pago < today
// Ошибка по одному клиенту не останавливает обработку остальных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if uc.deactivator == nil {
		return nil, ErrNotConfigured
	}

	today := req.Today
	if today.IsZero() {
		today = uc.timeProvider.Now()
	}

	// 1. Должники, ещё не отключённые
	clients, err := uc.clientRepo.GetOverdue(ctx, today)
	if err != nil {
		uc.logger.Error("CutUnpaidClients: failed to get overdue clients: %v", err)
		return nil, fmt.Errorf("%w: failed to get overdue clients: %v", ErrInternal, err)
	}

	resp := &Response{Checked: len(clients), FailedClientIDs: []int64{}}
	if len(clients) == 0 {
		uc.logger.Info("CutUnpaidClients: no overdue clients on %s", today.Format(domain.DateFormat))
		return resp, nil
	}

	// 2. По каждому клиенту: API, затем CAS Activo -> Cortado
	for _, client := range clients {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		uc.logger.Info("CutUnpaidClients: client id=%d (%s) is overdue, cutting service", client.ID, client.Name)

		if err := uc.deactivator.Deactivate(ctx, client.Name, ptr.Value(client.OnuSerial)); err != nil {
			uc.logger.Error("CutUnpaidClients: deactivation failed for client id=%d: %v", client.ID, err)
			uc.fail(resp, client.ID)
			continue
		}

		err := uc.clientRepo.UpdatePaymentState(ctx, client.ID, client.PaymentState, domain.PaymentCut)
		switch {
		case err == nil:
			resp.Cut++
			uc.observe(statusCut)
			uc.logger.Info("CutUnpaidClients: client id=%d cut", client.ID)
		case errors.Is(err, clientRepo.ErrPaymentStateConflict):
			// Оплата пришла во время запуска
			uc.logger.Warn("CutUnpaidClients: client id=%d payment state changed concurrently", client.ID)
			uc.observe(statusSkipped)
		default:
			uc.logger.Error("CutUnpaidClients: failed to update client id=%d: %v", client.ID, err)
			uc.fail(resp, client.ID)
		}
	}

	uc.logger.Info("CutUnpaidClients: checked=%d, cut=%d, failed=%d", resp.Checked, resp.Cut, resp.Failed)
	return resp, nil
}

func (uc *UseCase) fail(resp *Response, clientID int64) {
	resp.Failed++
	resp.FailedClientIDs = append(resp.FailedClientIDs, clientID)
	uc.observe(statusFailed)
}

func (uc *UseCase) observe(status string) {
	if uc.metrics != nil {
		uc.metrics.ObserveCutoff(status)
	}
}

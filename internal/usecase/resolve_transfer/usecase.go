package resolve_transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	installationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/installation"
	taskRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
	transferRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/transfer"
)

const operationName = "resolve_transfer"

// UseCase use case для принятия или отклонения передачи задачи
type UseCase struct {
	transferRepo     TransferRepository
	taskRepo         TaskRepository
	installationRepo InstallationRepository
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	transferRepo TransferRepository,
	taskRepo TaskRepository,
	installationRepo InstallationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		transferRepo:     transferRepo,
		taskRepo:         taskRepo,
		installationRepo: installationRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute применяет решение получателя
// accept: задача и инсталляция переходят получателю, задача возвращается в Pendiente
// reject: задача возвращается в Pendiente у запросившего техника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()

	uc.logger.Info("ResolveTransfer: transfer=%d, recipient=%d, decision=%s", req.TransferID, req.RecipientID, req.Decision)

	// 1. Решение проверяется до любых чтений
	decision, err := domain.ParseTransferDecision(req.Decision)
	if err != nil {
		uc.logger.Warn("ResolveTransfer: %v", err)
		return nil, err
	}

	var (
		transfer *domain.TransferRequest
		owner    int64
	)

	// 2. Транзакция
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем запрос
		found, err := uc.transferRepo.GetByID(txCtx, req.TransferID)
		if err != nil {
			if errors.Is(err, transferRepo.ErrTransferNotFound) {
				return ErrTransferNotFound
			}
			return fmt.Errorf("%w: failed to get transfer request: %v", ErrInternal, err)
		}
		if found.RecipientID != req.RecipientID {
			return ErrNotRecipient
		}
		if !found.IsPending() {
			return ErrAlreadyResolved
		}
		transfer = found

		// 2.2. Переход задачи
		if decision == domain.DecisionAccept {
			err = uc.taskRepo.Reassign(txCtx, found.TaskID, found.RequesterID, found.RecipientID,
				domain.TaskInTransfer, domain.TaskPending)
			owner = found.RecipientID
		} else {
			err = uc.taskRepo.UpdateStatus(txCtx, found.TaskID, domain.TaskInTransfer, domain.TaskPending)
			owner = found.RequesterID
		}
		if err != nil {
			if errors.Is(err, taskRepo.ErrStatusConflict) || errors.Is(err, taskRepo.ErrActiveTaskExists) {
				return ErrTaskStateChanged
			}
			return fmt.Errorf("%w: failed to update task: %v", ErrInternal, err)
		}

		// 2.3. При принятии инсталляция тоже переходит получателю
		if decision == domain.DecisionAccept {
			if err := uc.reassignInstallation(txCtx, found); err != nil {
				return err
			}
		}

		// 2.4. Закрываем запрос (CAS Pendiente -> Aceptada/Rechazada)
		if err := uc.transferRepo.Resolve(txCtx, found.ID, decision.ResultStatus()); err != nil {
			if errors.Is(err, transferRepo.ErrAlreadyResolved) {
				return ErrAlreadyResolved
			}
			return fmt.Errorf("%w: failed to resolve transfer request: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			uc.logger.Error("ResolveTransfer: rolled back: %v", err)
		} else {
			uc.logger.Warn("ResolveTransfer: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("ResolveTransfer: transfer id=%d %s, task id=%d now owned by technician id=%d",
		transfer.ID, decision.ResultStatus(), transfer.TaskID, owner)

	return &Response{
		TransferID:   transfer.ID,
		TaskID:       transfer.TaskID,
		Status:       string(decision.ResultStatus()),
		TaskStatus:   string(domain.TaskPending),
		TechnicianID: owner,
	}, nil
}

func (uc *UseCase) reassignInstallation(ctx context.Context, transfer *domain.TransferRequest) error {
	task, err := uc.taskRepo.GetByID(ctx, transfer.TaskID)
	if err != nil {
		return fmt.Errorf("%w: failed to get task: %v", ErrInternal, err)
	}

	err = uc.installationRepo.Reassign(ctx, task.InstallationID, transfer.RequesterID, transfer.RecipientID)
	if err != nil {
		if errors.Is(err, installationRepo.ErrStatusConflict) {
			return ErrInstallationStateChanged
		}
		return fmt.Errorf("%w: failed to reassign installation: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) observe(err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveOperation(operationName, domain.Category(err))
	}
}

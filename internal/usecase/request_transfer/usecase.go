package request_transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	taskRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
	userRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/user"
)

const operationName = "request_transfer"

// UseCase use case для запроса передачи задачи
type UseCase struct {
	taskRepo     TaskRepository
	transferRepo TransferRepository
	userRepo     UserRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	taskRepo TaskRepository,
	transferRepo TransferRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		taskRepo:     taskRepo,
		transferRepo: transferRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute создаёт запрос передачи и переводит задачу в En Traspaso
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()

	uc.logger.Info("RequestTransfer: task=%d, requester=%d, recipient=%d", req.TaskID, req.RequesterID, req.RecipientID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestTransfer: validation failed: %v", err)
		return nil, err
	}

	var created *domain.TransferRequest

	// 2. Транзакция
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получатель должен быть техником
		recipient, err := uc.userRepo.GetByID(txCtx, req.RecipientID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrRecipientNotFound
			}
			return fmt.Errorf("%w: failed to get recipient: %v", ErrInternal, err)
		}
		if !recipient.IsTechnician() {
			return ErrRecipientNotTechnician
		}

		// 2.2. Задача принадлежит запрашивающему и ожидает выполнения
		task, err := uc.taskRepo.GetByID(txCtx, req.TaskID)
		if err != nil {
			if errors.Is(err, taskRepo.ErrTaskNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("%w: failed to get task: %v", ErrInternal, err)
		}
		if !task.IsAssignedTo(req.RequesterID) {
			return ErrNotAssigned
		}
		if task.Status != domain.TaskPending {
			return fmt.Errorf("%w: status=%s", ErrTaskNotPending, task.Status)
		}

		// 2.3. Запрос передачи
		created, err = uc.transferRepo.Create(txCtx, &domain.TransferRequest{
			TaskID:      task.ID,
			RequesterID: req.RequesterID,
			RecipientID: req.RecipientID,
			Status:      domain.TransferPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create transfer request: %v", ErrInternal, err)
		}

		// 2.4. Задача Pendiente -> En Traspaso
		if err := uc.taskRepo.UpdateStatus(txCtx, task.ID, domain.TaskPending, domain.TaskInTransfer); err != nil {
			if errors.Is(err, taskRepo.ErrStatusConflict) {
				return ErrTaskNotPending
			}
			return fmt.Errorf("%w: failed to update task: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			uc.logger.Error("RequestTransfer: rolled back: %v", err)
		} else {
			uc.logger.Warn("RequestTransfer: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("RequestTransfer: created transfer id=%d for task id=%d", created.ID, created.TaskID)

	return &Response{
		TransferID: created.ID,
		TaskID:     created.TaskID,
		Status:     string(created.Status),
		TaskStatus: string(domain.TaskInTransfer),
		CreatedAt:  created.CreatedAt,
	}, nil
}

func (uc *UseCase) observe(err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveOperation(operationName, domain.Category(err))
	}
}

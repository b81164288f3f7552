package assign_technician

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	clientRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	installationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/installation"
	taskRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
	userRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/user"
	"github.com/m04kA/SMC-FieldService/internal/notifier"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

const operationName = "assign_technician"

// UseCase use case для назначения (переназначения) техника на инсталляцию
type UseCase struct {
	installationRepo InstallationRepository
	taskRepo         TaskRepository
	clientRepo       ClientRepository
	userRepo         UserRepository
	txManager        TransactionManager
	notifier         Notifier
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	installationRepo InstallationRepository,
	taskRepo TaskRepository,
	clientRepo ClientRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		installationRepo: installationRepo,
		taskRepo:         taskRepo,
		clientRepo:       clientRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		notifier:         notifier,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case назначения техника
// Активная задача в Pendiente/Disponible заменяется (Anulada), задача в передаче блокирует назначение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()

	uc.logger.Info("AssignTechnician: installation=%d, technician=%d, admin=%d",
		req.InstallationID, req.TechnicianID, req.AdminID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignTechnician: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		installation *domain.Installation
		technician   *domain.User
		created      *domain.Task
		superseded   *int64
	)

	// 2. Все переходы в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем инсталляцию
		inst, err := uc.installationRepo.GetByID(txCtx, req.InstallationID)
		if err != nil {
			if errors.Is(err, installationRepo.ErrInstallationNotFound) {
				return ErrInstallationNotFound
			}
			return fmt.Errorf("%w: failed to get installation: %v", ErrInternal, err)
		}
		if inst.IsCompleted() {
			return ErrInstallationCompleted
		}
		installation = inst

		// 2.2. Проверяем техника
		user, err := uc.userRepo.GetByID(txCtx, req.TechnicianID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrTechnicianNotFound
			}
			return fmt.Errorf("%w: failed to get technician: %v", ErrInternal, err)
		}
		if !user.IsTechnician() {
			return ErrNotATechnician
		}
		technician = user

		// 2.3. Заменяем текущую активную задачу
		active, err := uc.taskRepo.GetActiveByInstallation(txCtx, inst.ID)
		switch {
		case errors.Is(err, taskRepo.ErrTaskNotFound):
		case err != nil:
			return fmt.Errorf("%w: failed to get active task: %v", ErrInternal, err)
		case active.Status == domain.TaskInTransfer:
			return ErrTransferInProgress
		case active.CanBeSuperseded():
			if err := uc.taskRepo.UpdateStatus(txCtx, active.ID, active.Status, domain.TaskCancelled); err != nil {
				return mapTaskError(err)
			}
			superseded = ptr.Ptr(active.ID)
		}

		// 2.4. Инсталляция -> Asignado
		if err := uc.installationRepo.Assign(txCtx, inst.ID, req.TechnicianID); err != nil {
			if errors.Is(err, installationRepo.ErrStatusConflict) {
				return ErrStateChanged
			}
			return fmt.Errorf("%w: failed to assign installation: %v", ErrInternal, err)
		}

		// 2.5. Новая задача
		clientName := ""
		if client, err := uc.clientRepo.GetByID(txCtx, inst.ClientID); err == nil {
			clientName = client.Name
		} else if !errors.Is(err, clientRepo.ErrClientNotFound) {
			return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}

		created, err = uc.taskRepo.Create(txCtx, &domain.Task{
			InstallationID: inst.ID,
			AdminID:        ptr.Ptr(req.AdminID),
			TechnicianID:   ptr.Ptr(req.TechnicianID),
			Type:           inst.Name,
			Description:    ptr.Ptr("Instalación de " + inst.Name + " para el cliente " + clientName),
			AssignedOn:     now,
			Status:         domain.TaskPending,
		})
		if err != nil {
			return mapTaskError(err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			uc.logger.Error("AssignTechnician: rolled back: %v", err)
		} else {
			uc.logger.Warn("AssignTechnician: rejected: %v", err)
		}
		return nil, err
	}

	if superseded != nil {
		uc.logger.Info("AssignTechnician: task id=%d superseded by task id=%d", *superseded, created.ID)
	}
	uc.logger.Info("AssignTechnician: installation id=%d assigned to technician id=%d", installation.ID, technician.ID)

	// 3. Уведомление после фиксации
	if uc.notifier != nil {
		uc.notifier.Notify(ptr.Value(technician.Phone), notifier.TechnicianAssigned(installation.Name))
	}

	return &Response{
		InstallationID:   installation.ID,
		TaskID:           created.ID,
		TechnicianID:     technician.ID,
		Status:           string(domain.InstallationAssigned),
		SupersededTaskID: superseded,
	}, nil
}

func mapTaskError(err error) error {
	if errors.Is(err, taskRepo.ErrStatusConflict) || errors.Is(err, taskRepo.ErrActiveTaskExists) {
		return ErrStateChanged
	}
	return fmt.Errorf("%w: task update failed: %v", ErrInternal, err)
}

func (uc *UseCase) observe(err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveOperation(operationName, domain.Category(err))
	}
}

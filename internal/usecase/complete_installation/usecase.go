package complete_installation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	installationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/installation"
	inventoryRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/inventory"
	taskRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
	"github.com/m04kA/SMC-FieldService/internal/notifier"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

const operationName = "complete_installation"

// UseCase use case для завершения инсталляции техником
type UseCase struct {
	installationRepo InstallationRepository
	taskRepo         TaskRepository
	inventoryRepo    InventoryRepository
	clientRepo       ClientRepository
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
	inventoryRepo InventoryRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		installationRepo: installationRepo,
		taskRepo:         taskRepo,
		inventoryRepo:    inventoryRepo,
		clientRepo:       clientRepo,
		txManager:        txManager,
		notifier:         notifier,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case завершения инсталляции
// Списание оборудования, завершение инсталляции и задачи выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()

	uc.logger.Info("CompleteInstallation: installation=%d, technician=%d, equipment=%d, photos=%d",
		req.InstallationID, req.TechnicianID, req.EquipmentID, len(req.Photos))

	// 1. Валидация доказательств до любых записей
	gps, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CompleteInstallation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		installation *domain.Installation
		task         *domain.Task
	)

	// 2. Транзакция
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем инсталляцию
		inst, err := uc.installationRepo.GetByID(txCtx, req.InstallationID)
		if err != nil {
			if errors.Is(err, installationRepo.ErrInstallationNotFound) {
				return ErrInstallationNotFound
			}
			return fmt.Errorf("%w: failed to get installation: %v", ErrInternal, err)
		}
		installation = inst

		// 2.2. Активная задача должна принадлежать технику и быть в Pendiente
		active, err := uc.taskRepo.GetActiveByInstallation(txCtx, inst.ID)
		if err != nil {
			if errors.Is(err, taskRepo.ErrTaskNotFound) {
				return ErrNoActiveTask
			}
			return fmt.Errorf("%w: failed to get active task: %v", ErrInternal, err)
		}
		if !active.IsAssignedTo(req.TechnicianID) {
			return ErrNotAssigned
		}
		if active.Status != domain.TaskPending {
			return fmt.Errorf("%w: status=%s", ErrTaskNotPending, active.Status)
		}
		task = active

		// 2.3. Списываем оборудование (CAS Disponible -> Instalado)
		if err := uc.inventoryRepo.MarkInstalled(txCtx, req.EquipmentID, now); err != nil {
			switch {
			case errors.Is(err, inventoryRepo.ErrItemNotFound):
				return ErrEquipmentNotFound
			case errors.Is(err, inventoryRepo.ErrNotAvailable):
				return ErrEquipmentNotAvailable
			}
			return fmt.Errorf("%w: failed to mark equipment installed: %v", ErrInternal, err)
		}

		// 2.4. Инсталляция Asignado -> Completado
		err = uc.installationRepo.Complete(txCtx, inst.ID, domain.CompletionEvidence{
			FinalDescription: req.FinalDescription,
			GPS:              gps,
			Photos:           nonEmptyPhotos(req.Photos),
			CompletedAt:      now,
			PaymentMethod:    req.PaymentMethod,
			TransactionRef:   req.TransactionRef,
			EquipmentID:      req.EquipmentID,
		})
		if err != nil {
			switch {
			case errors.Is(err, installationRepo.ErrStatusConflict):
				return ErrStateChanged
			case errors.Is(err, installationRepo.ErrEquipmentAlreadyUsed):
				return ErrEquipmentNotAvailable
			}
			return fmt.Errorf("%w: failed to complete installation: %v", ErrInternal, err)
		}

		// 2.5. Задача Pendiente -> Completada
		if err := uc.taskRepo.UpdateStatus(txCtx, active.ID, domain.TaskPending, domain.TaskCompleted); err != nil {
			if errors.Is(err, taskRepo.ErrStatusConflict) {
				return ErrStateChanged
			}
			return fmt.Errorf("%w: failed to complete task: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			uc.logger.Error("CompleteInstallation: rolled back: %v", err)
		} else {
			uc.logger.Warn("CompleteInstallation: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CompleteInstallation: installation id=%d completed, task id=%d, equipment id=%d",
		installation.ID, task.ID, req.EquipmentID)

	// 3. Уведомление клиенту, ошибки только логируются
	uc.notifyClient(ctx, installation, now)

	return &Response{
		InstallationID: installation.ID,
		TaskID:         task.ID,
		EquipmentID:    req.EquipmentID,
		Status:         string(domain.InstallationCompleted),
		GPS:            gps,
		CompletedAt:    now,
	}, nil
}

func (uc *UseCase) notifyClient(ctx context.Context, inst *domain.Installation, completedAt time.Time) {
	if uc.notifier == nil {
		return
	}
	client, err := uc.clientRepo.GetByID(ctx, inst.ClientID)
	if err != nil {
		uc.logger.Warn("CompleteInstallation: client id=%d not loaded for notification: %v", inst.ClientID, err)
		return
	}
	uc.notifier.Notify(ptr.Value(client.Phone), notifier.InstallationCompleted(client.Name, inst.Name, completedAt))
}

func (uc *UseCase) observe(err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveOperation(operationName, domain.Category(err))
	}
}

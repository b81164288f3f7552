package create_installation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	taskRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
	userRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/user"
	"github.com/m04kA/SMC-FieldService/internal/notifier"
	clientModels "github.com/m04kA/SMC-FieldService/internal/service/clients/models"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

const operationName = "create_installation"

// UseCase use case для создания инсталляции вместе с клиентом и задачей
type UseCase struct {
	clients          ClientRegistry
	installationRepo InstallationRepository
	taskRepo         TaskRepository
	userRepo         UserRepository
	txManager        TransactionManager
	notifier         Notifier
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// notifier и metrics могут быть nil
func NewUseCase(
	clients ClientRegistry,
	installationRepo InstallationRepository,
	taskRepo TaskRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		clients:          clients,
		installationRepo: installationRepo,
		taskRepo:         taskRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		notifier:         notifier,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания инсталляции
// Клиент, инсталляция и задача создаются в одной транзакции: либо все три, либо ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()

	uc.logger.Info("CreateInstallation: name=%s, client_dni=%s, technician=%d, admin=%d",
		req.Name, req.ClientNationalID, req.TechnicianID, req.AdminID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateInstallation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	name := strings.TrimSpace(req.Name)

	var (
		client       *domain.Client
		installation *domain.Installation
		task         *domain.Task
		technician   *domain.User
	)

	// 2. Все записи в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем техника
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

		// 2.2. Находим или создаём клиента
		client, err = uc.clients.FindOrCreate(txCtx, clientModels.ClientInput{
			NationalID: req.ClientNationalID,
			Name:       req.ClientName,
			Phone:      req.ClientPhone,
			Address:    req.ClientAddress,
			Plan:       req.ClientPlan,
		})
		if err != nil {
			return err
		}

		// 2.3. Инсталляция сразу назначена технику
		installation, err = uc.installationRepo.Create(txCtx, &domain.Installation{
			ClientID:     client.ID,
			Name:         name,
			Description:  req.Description,
			Location:     req.Location,
			ImageURL:     req.ImageURL,
			Status:       domain.InstallationAssigned,
			TechnicianID: ptr.Ptr(req.TechnicianID),
			RequestedAt:  req.RequestedAt,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create installation: %v", ErrInternal, err)
		}

		// 2.4. Парная задача
		task, err = uc.taskRepo.Create(txCtx, &domain.Task{
			InstallationID: installation.ID,
			AdminID:        ptr.Ptr(req.AdminID),
			TechnicianID:   ptr.Ptr(req.TechnicianID),
			Type:           name,
			Description:    ptr.Ptr(taskDescription(name, client.Name)),
			AssignedOn:     now,
			Status:         domain.TaskPending,
		})
		if err != nil {
			if errors.Is(err, taskRepo.ErrActiveTaskExists) {
				return ErrActiveTaskExists
			}
			return fmt.Errorf("%w: failed to create task: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			uc.logger.Error("CreateInstallation: rolled back: %v", err)
		} else {
			uc.logger.Warn("CreateInstallation: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateInstallation: created installation id=%d, task id=%d, client id=%d",
		installation.ID, task.ID, client.ID)

	// 3. Уведомление технику после фиксации транзакции
	if uc.notifier != nil {
		uc.notifier.Notify(ptr.Value(technician.Phone), notifier.TechnicianAssigned(name))
	}

	return &Response{
		InstallationID: installation.ID,
		TaskID:         task.ID,
		ClientID:       client.ID,
		ClientCode:     client.Code,
		Status:         string(installation.Status),
		TaskStatus:     string(task.Status),
		CreatedAt:      installation.CreatedAt,
	}, nil
}

func (uc *UseCase) observe(err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveOperation(operationName, domain.Category(err))
	}
}

package tasks

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/service/tasks/models"
)

// Service чтение задач и входящих передач техника
type Service struct {
	taskRepo     TaskRepository
	transferRepo TransferRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса задач
func NewService(taskRepo TaskRepository, transferRepo TransferRepository, logger Logger) *Service {
	return &Service{
		taskRepo:     taskRepo,
		transferRepo: transferRepo,
		logger:       logger,
	}
}

// ListTechnicianTasks возвращает задачи техника в указанных статусах
// Пустой список статусов означает все активные задачи
func (s *Service) ListTechnicianTasks(ctx context.Context, technicianID int64, states []string) ([]*models.TaskResponse, error) {
	statuses := make([]domain.TaskStatus, 0, len(states))
	for _, raw := range states {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		statuses = domain.ActiveTaskStatuses
	}

	list, err := s.taskRepo.GetByTechnician(ctx, technicianID, statuses)
	if err != nil {
		s.logger.Error("ListTechnicianTasks: repository error for technician_id=%d: %v", technicianID, err)
		return nil, fmt.Errorf("%w: ListTechnicianTasks - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTaskList(list), nil
}

// ListIncomingTransfers возвращает ожидающие ответа запросы передачи, адресованные технику
func (s *Service) ListIncomingTransfers(ctx context.Context, recipientID int64) ([]*models.TransferResponse, error) {
	list, err := s.transferRepo.GetPendingByRecipient(ctx, recipientID)
	if err != nil {
		s.logger.Error("ListIncomingTransfers: repository error for recipient_id=%d: %v", recipientID, err)
		return nil, fmt.Errorf("%w: ListIncomingTransfers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTransferList(list), nil
}

// TechnicianStats считает завершённые, ожидающие и переданные задачи техника
// Pendiente и Disponible считаются вместе как ожидающие
func (s *Service) TechnicianStats(ctx context.Context, technicianID int64) (*models.StatsResponse, error) {
	counts, err := s.taskRepo.CountByTechnician(ctx, technicianID)
	if err != nil {
		s.logger.Error("TechnicianStats: repository error for technician_id=%d: %v", technicianID, err)
		return nil, fmt.Errorf("%w: TechnicianStats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(domain.TechnicianStats{
		Completed:  counts[domain.TaskCompleted],
		Pending:    counts[domain.TaskPending] + counts[domain.TaskAvailable],
		InTransfer: counts[domain.TaskInTransfer],
	}), nil
}

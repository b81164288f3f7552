package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

// Service склад оборудования
// Перевод Disponible -> Instalado при завершении инсталляции выполняет usecase complete_installation
type Service struct {
	inventoryRepo    InventoryRepository
	installationRepo InstallationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса склада
func NewService(
	inventoryRepo InventoryRepository,
	installationRepo InstallationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		inventoryRepo:    inventoryRepo,
		installationRepo: installationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// AddItem регистрирует оборудование в состоянии Disponible с сегодняшней датой поступления
func (s *Service) AddItem(ctx context.Context, req models.AddItemRequest) (*models.ItemResponse, error) {
	serial, model, err := validateItemFields(req.SerialNumber, req.Model)
	if err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.Create(ctx, &domain.InventoryItem{
		SerialNumber: serial,
		Model:        model,
		State:        domain.ItemAvailable,
		ReceivedOn:   s.timeProvider.Now(),
	})
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrDuplicateSerial) {
			s.logger.Warn("AddItem: serial=%s already registered", serial)
			return nil, ErrDuplicateSerial
		}
		s.logger.Error("AddItem: repository error for serial=%s: %v", serial, err)
		return nil, fmt.Errorf("%w: AddItem - create item: %v", ErrInternal, err)
	}

	s.logger.Info("AddItem: registered item id=%d serial=%s", item.ID, serial)
	return models.FromDomainItem(item), nil
}

// UpdateItem ручная правка серийного номера, модели и состояния
// Вернуть в Disponible оборудование, привязанное к инсталляции, нельзя
func (s *Service) UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (*models.ItemResponse, error) {
	serial, model, err := validateItemFields(req.SerialNumber, req.Model)
	if err != nil {
		return nil, err
	}
	state, err := domain.ParseItemState(req.State)
	if err != nil {
		return nil, err
	}

	var updated *domain.InventoryItem

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		item, err := s.getItem(txCtx, id)
		if err != nil {
			return err
		}

		if state == domain.ItemAvailable && !item.IsAvailable() {
			linked, err := s.installationRepo.HasEquipment(txCtx, id)
			if err != nil {
				return fmt.Errorf("%w: UpdateItem - check linkage: %v", ErrInternal, err)
			}
			if linked {
				return ErrItemLinked
			}
		}

		switch {
		case state == domain.ItemAvailable:
			item.InstalledAt = nil
		case item.InstalledAt == nil:
			item.InstalledAt = ptr.Ptr(s.timeProvider.Now())
		}
		item.SerialNumber = serial
		item.Model = model
		item.State = state

		if err := s.inventoryRepo.Update(txCtx, item); err != nil {
			switch {
			case errors.Is(err, inventoryRepo.ErrDuplicateSerial):
				return ErrDuplicateSerial
			case errors.Is(err, inventoryRepo.ErrItemNotFound):
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: UpdateItem - update item: %v", ErrInternal, err)
		}

		updated = item
		return nil
	})
	if err != nil {
		s.logger.Warn("UpdateItem: item id=%d: %v", id, err)
		return nil, err
	}

	s.logger.Info("UpdateItem: item id=%d updated, state=%s", id, state)
	return models.FromDomainItem(updated), nil
}

// DeleteItem удаляет оборудование, не привязанное к инсталляциям
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getItem(txCtx, id); err != nil {
			return err
		}

		linked, err := s.installationRepo.HasEquipment(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: DeleteItem - check linkage: %v", ErrInternal, err)
		}
		if linked {
			return ErrItemLinked
		}

		if err := s.inventoryRepo.Delete(txCtx, id); err != nil {
			switch {
			case errors.Is(err, inventoryRepo.ErrItemInUse):
				return ErrItemLinked
			case errors.Is(err, inventoryRepo.ErrItemNotFound):
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: DeleteItem - delete item: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("DeleteItem: item id=%d: %v", id, err)
		return err
	}

	s.logger.Info("DeleteItem: item id=%d deleted", id)
	return nil
}

// ListAvailable получает оборудование, доступное для установки
func (s *Service) ListAvailable(ctx context.Context) ([]*models.ItemResponse, error) {
	items, err := s.inventoryRepo.List(ctx, ptr.Ptr(domain.ItemAvailable))
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainItemList(items), nil
}

// GetBySerial получает оборудование по серийному номеру
func (s *Service) GetBySerial(ctx context.Context, serial string) (*models.ItemResponse, error) {
	item, err := s.inventoryRepo.GetBySerial(ctx, strings.TrimSpace(serial))
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("GetBySerial: repository error for serial=%s: %v", serial, err)
		return nil, fmt.Errorf("%w: GetBySerial - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainItem(item), nil
}

func (s *Service) getItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: get item: %v", ErrInternal, err)
	}
	return item, nil
}

func validateItemFields(serial, model string) (string, string, error) {
	serial = strings.TrimSpace(serial)
	model = strings.TrimSpace(model)

	if serial == "" {
		return "", "", domain.NewFieldError("numero_serie", "serial number is required")
	}
	if model == "" {
		return "", "", domain.NewFieldError("modelo", "model is required")
	}
	if len(model) > domain.MaxNameLength {
		return "", "", domain.NewFieldError("modelo", "model is too long")
	}
	return serial, model, nil
}

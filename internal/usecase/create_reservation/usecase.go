package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	installationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/installation"
	reservationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/reservation"
)

const operationName = "create_reservation"

// UseCase use case для резервирования времени на инсталляции
type UseCase struct {
	reservationRepo  ReservationRepository
	installationRepo InstallationRepository
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	installationRepo InstallationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		installationRepo: installationRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case резервирования
// Использует сериализуемую транзакцию и блокировку инсталляции для предотвращения гонки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()

	uc.logger.Info("CreateReservation: installation=%d, user=%d, date=%s, %s-%s",
		req.InstallationID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	date := truncateDate(req.Date)

	var result *domain.Reservation

	// 2. Сериализуемая транзакция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем инсталляцию, чтобы параллельные резервы шли по очереди
		if _, err := uc.installationRepo.GetByID(txCtx, req.InstallationID); err != nil {
			if errors.Is(err, installationRepo.ErrInstallationNotFound) {
				return ErrInstallationNotFound
			}
			return fmt.Errorf("%w: failed to get installation: %v", ErrInternal, err)
		}

		// 2.2. Резервы на эту дату
		existing, err := uc.reservationRepo.GetByInstallationAndDate(txCtx, req.InstallationID, date)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 2.3. Проверяем пересечение [start, end)
		if conflict := findOverlap(existing, req); conflict != nil {
			return fmt.Errorf("%w: reservation id=%d %s-%s", ErrOverlap, conflict.ID, conflict.StartTime, conflict.EndTime)
		}

		// 2.4. Сохраняем; exclusion constraint страхует от пропущенной гонки
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			InstallationID: req.InstallationID,
			UserID:         req.UserID,
			Date:           date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) {
				return ErrOverlap
			}
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			uc.logger.Error("CreateReservation: %v", err)
		} else {
			uc.logger.Warn("CreateReservation: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		InstallationID: result.InstallationID,
		UserID:         result.UserID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		CreatedAt:      result.CreatedAt,
	}, nil
}

func (uc *UseCase) observe(err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveOperation(operationName, domain.Category(err))
	}
}

// truncateDate обнуляет время, оставляя дату
func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

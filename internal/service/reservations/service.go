package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FieldService/internal/service/reservations/models"
)

// Service сервис для работы с резервами
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса резервов
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Cancel удаляет резерв; отменить может только пользователь, который его создал
func (s *Service) Cancel(ctx context.Context, reservationID, userID int64) error {
	s.logger.Info("Cancel: reservation id=%d by user=%d", reservationID, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - get reservation: %v", ErrInternal, err)
	}

	if !reservation.IsOwnedBy(userID) {
		s.logger.Warn("Cancel: user=%d is not the owner of reservation id=%d", userID, reservationID)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to delete reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - delete reservation: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", reservationID)
	return nil
}

// ListUserReservations получает резервы пользователя по дате и времени начала
func (s *Service) ListUserReservations(ctx context.Context, userID int64) ([]*models.ReservationResponse, error) {
	list, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListUserReservations - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservationList(list), nil
}

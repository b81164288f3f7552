package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-FieldService/internal/service/reservations/models"
)

type ReservationService interface {
	ListUserReservations(ctx context.Context, userID int64) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

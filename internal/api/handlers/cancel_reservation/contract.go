package cancel_reservation

import "context"

type ReservationService interface {
	Cancel(ctx context.Context, reservationID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

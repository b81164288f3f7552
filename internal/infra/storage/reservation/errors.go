package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резерв не найден
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrOverlap интервал пересекается с существующим резервом той же инсталляции
	ErrOverlap = errors.New("reservation.repository: time range overlaps an existing reservation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

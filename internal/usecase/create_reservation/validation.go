package create_reservation

import (
	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstallationID <= 0 {
		return domain.NewFieldError("instalacion_id", "installation id must be positive")
	}

	if req.Date.IsZero() {
		return domain.NewFieldError("fecha", "date is required")
	}

	if err := req.StartTime.Validate(); err != nil {
		return domain.NewFieldError("hora_inicio", "start time must be HH:MM")
	}

	if err := req.EndTime.Validate(); err != nil {
		return domain.NewFieldError("hora_fin", "end time must be HH:MM")
	}

	// Пустой и обратный интервалы запрещены
	if !req.StartTime.IsBefore(req.EndTime) {
		return domain.NewFieldError("hora_fin", "end time must be after start time")
	}

	return nil
}

// findOverlap возвращает первый резерв, пересекающийся с [start, end)
func findOverlap(existing []*domain.Reservation, req *Request) *domain.Reservation {
	for _, r := range existing {
		if r.Overlaps(req.StartTime, req.EndTime) {
			return r
		}
	}
	return nil
}

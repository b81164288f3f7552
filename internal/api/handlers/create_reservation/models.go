package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	createReservation "github.com/m04kA/SMC-FieldService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-FieldService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	InstallationID int64  `json:"instalacionId"`
	Date           string `json:"fecha"`      // "2025-01-15"
	StartTime      string `json:"horaInicio"` // "10:00"
	EndTime        string `json:"horaFin"`    // "11:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64  `json:"id"`
	InstallationID int64  `json:"instalacionId"`
	UserID         int64  `json:"usuarioId"`
	Date           string `json:"fecha"`
	StartTime      string `json:"horaInicio"`
	EndTime        string `json:"horaFin"`
	CreatedAt      string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, domain.NewFieldError("fecha", "expected YYYY-MM-DD")
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, domain.NewFieldError("hora_inicio", "expected HH:MM")
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, domain.NewFieldError("hora_fin", "expected HH:MM")
	}

	return &createReservation.Request{
		InstallationID: r.InstallationID,
		UserID:         userID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		InstallationID: resp.InstallationID,
		UserID:         resp.UserID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}

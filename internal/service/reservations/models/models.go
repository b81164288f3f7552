package models

import (
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// ReservationResponse резерв в ответах API
type ReservationResponse struct {
	ID             int64     `json:"id"`
	InstallationID int64     `json:"installationId"`
	UserID         int64     `json:"userId"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ API
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:             r.ID,
		InstallationID: r.InstallationID,
		UserID:         r.UserID,
		Date:           r.Date.Format(domain.DateFormat),
		StartTime:      r.StartTime.String(),
		EndTime:        r.EndTime.String(),
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список резервов
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r))
	}
	return out
}

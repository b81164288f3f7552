package complete_installation

import (
	"time"

	completeInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/complete_installation"
)

// CompleteInstallationRequest HTTP request model
type CompleteInstallationRequest struct {
	EquipmentID      int64    `json:"equipoId"`
	Photos           []string `json:"fotos"`
	Latitude         string   `json:"latitud"`
	Longitude        string   `json:"longitud"`
	FinalDescription *string  `json:"descripcionFinal,omitempty"`
	PaymentMethod    *string  `json:"metodoPago,omitempty"`
	TransactionRef   *string  `json:"numeroTransaccion,omitempty"`
}

// CompletionResponse HTTP response model
type CompletionResponse struct {
	InstallationID int64  `json:"instalacionId"`
	TaskID         int64  `json:"tareaId"`
	EquipmentID    int64  `json:"equipoId"`
	Status         string `json:"estado"`
	GPS            string `json:"gps"`
	CompletedAt    string `json:"fechaFinalizacion"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteInstallationRequest) ToUseCaseRequest(installationID, technicianID int64) *completeInstallation.Request {
	return &completeInstallation.Request{
		InstallationID:   installationID,
		TechnicianID:     technicianID,
		EquipmentID:      r.EquipmentID,
		Photos:           r.Photos,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		FinalDescription: r.FinalDescription,
		PaymentMethod:    r.PaymentMethod,
		TransactionRef:   r.TransactionRef,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeInstallation.Response) *CompletionResponse {
	return &CompletionResponse{
		InstallationID: resp.InstallationID,
		TaskID:         resp.TaskID,
		EquipmentID:    resp.EquipmentID,
		Status:         resp.Status,
		GPS:            resp.GPS,
		CompletedAt:    resp.CompletedAt.Format(time.RFC3339),
	}
}

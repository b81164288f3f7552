package create_installation

import (
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	createInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/create_installation"
)

// CreateInstallationRequest HTTP request model
type CreateInstallationRequest struct {
	Name         string  `json:"nombre"`
	Description  *string `json:"descripcion,omitempty"`
	Location     *string `json:"ubicacion,omitempty"`
	ImageURL     *string `json:"imagen,omitempty"`
	RequestedAt  *string `json:"fechaSolicitud,omitempty"` // "2025-01-15 09:30:00"
	TechnicianID int64   `json:"tecnicoId"`
	Client       struct {
		NationalID string  `json:"dni"`
		Name       string  `json:"nombre"`
		Phone      *string `json:"telefono,omitempty"`
		Address    *string `json:"direccion,omitempty"`
		Plan       *string `json:"plan,omitempty"`
	} `json:"cliente"`
}

// InstallationResponse HTTP response model
type InstallationResponse struct {
	InstallationID int64   `json:"instalacionId"`
	TaskID         int64   `json:"tareaId"`
	ClientID       int64   `json:"clienteId"`
	ClientCode     *string `json:"codigoCliente,omitempty"`
	Status         string  `json:"estado"`
	TaskStatus     string  `json:"estadoTarea"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateInstallationRequest) ToUseCaseRequest(adminID int64) (*createInstallation.Request, error) {
	var requestedAt *time.Time
	if r.RequestedAt != nil && *r.RequestedAt != "" {
		parsed, err := time.Parse(domain.DateTimeFormat, *r.RequestedAt)
		if err != nil {
			return nil, err
		}
		requestedAt = &parsed
	}

	return &createInstallation.Request{
		Name:             r.Name,
		Description:      r.Description,
		Location:         r.Location,
		ImageURL:         r.ImageURL,
		RequestedAt:      requestedAt,
		ClientNationalID: r.Client.NationalID,
		ClientName:       r.Client.Name,
		ClientPhone:      r.Client.Phone,
		ClientAddress:    r.Client.Address,
		ClientPlan:       r.Client.Plan,
		TechnicianID:     r.TechnicianID,
		AdminID:          adminID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createInstallation.Response) *InstallationResponse {
	return &InstallationResponse{
		InstallationID: resp.InstallationID,
		TaskID:         resp.TaskID,
		ClientID:       resp.ClientID,
		ClientCode:     resp.ClientCode,
		Status:         resp.Status,
		TaskStatus:     resp.TaskStatus,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}

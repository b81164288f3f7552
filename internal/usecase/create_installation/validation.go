package create_installation

import (
	"strings"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewFieldError("nombre", "installation name is required")
	}
	if len(req.Name) > domain.MaxNameLength {
		return domain.NewFieldError("nombre", "installation name is too long")
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return domain.NewFieldError("descripcion", "description is too long")
	}

	if strings.TrimSpace(req.ClientNationalID) == "" {
		return domain.NewFieldError("dni_cliente", "client national id is required")
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return domain.NewFieldError("nombre_cliente", "client name is required")
	}

	if req.TechnicianID <= 0 {
		return domain.NewFieldError("tecnico_id", "technician id must be positive")
	}

	if req.AdminID <= 0 {
		return domain.NewFieldError("admin_id", "admin id must be positive")
	}

	return nil
}

// taskDescription описание парной задачи
func taskDescription(installationName, clientName string) string {
	return "Instalación de " + installationName + " para el cliente " + clientName
}

package assign_technician

import "github.com/m04kA/SMC-FieldService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstallationID <= 0 {
		return domain.NewFieldError("instalacion_id", "installation id must be positive")
	}
	if req.TechnicianID <= 0 {
		return domain.NewFieldError("tecnico_id", "technician id must be positive")
	}
	if req.AdminID <= 0 {
		return domain.NewFieldError("admin_id", "admin id must be positive")
	}
	return nil
}

package notifier

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// TechnicianAssigned сообщение технику о новой задаче
func TechnicianAssigned(installationName string) string {
	return fmt.Sprintf("¡Hola! Se te ha asignado una nueva tarea: %s. Revisa la app para más detalles.", installationName)
}

// InstallationCompleted сообщение клиенту о завершении инсталляции
func InstallationCompleted(clientName, installationName string, completedAt time.Time) string {
	return fmt.Sprintf(
		"¡Hola %s! Tu instalación de %s ha sido completada con éxito. Fecha de finalización: %s.",
		clientName, installationName, completedAt.Format(domain.DateTimeFormat),
	)
}

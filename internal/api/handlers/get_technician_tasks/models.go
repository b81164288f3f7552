package get_technician_tasks

import (
	"github.com/m04kA/SMC-FieldService/internal/service/tasks/models"
)

// TechnicianTasksResponse задачи, входящие передачи и счётчики техника
type TechnicianTasksResponse struct {
	Tasks     []*models.TaskResponse     `json:"tareas"`
	Transfers []*models.TransferResponse `json:"traspasos"`
	Stats     *models.StatsResponse      `json:"estadisticas"`
}

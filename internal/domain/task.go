package domain

import (
	"fmt"
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pendiente"
	TaskAvailable  TaskStatus = "Disponible"
	TaskCompleted  TaskStatus = "Completada"
	TaskInTransfer TaskStatus = "En Traspaso"
	TaskCancelled  TaskStatus = "Anulada" // заменена при переназначении
)

// ActiveTaskStatuses статусы, при которых задача считается активной
// У инсталляции может быть не больше одной активной задачи
var ActiveTaskStatuses = []TaskStatus{
	TaskPending,
	TaskAvailable,
	TaskInTransfer,
}

// Task represents a technician-assigned unit of work for an installation
type Task struct {
	ID             int64
	InstallationID int64
	AdminID        *int64
	TechnicianID   *int64
	Type           string
	Description    *string
	AssignedOn     time.Time
	Status         TaskStatus
	CreatedAt      time.Time
}

// IsActive returns true if the task is not completed or cancelled
func (t *Task) IsActive() bool {
	for _, s := range ActiveTaskStatuses {
		if t.Status == s {
			return true
		}
	}
	return false
}

// IsAssignedTo returns true if the task belongs to the technician
func (t *Task) IsAssignedTo(technicianID int64) bool {
	return t.TechnicianID != nil && *t.TechnicianID == technicianID
}

// CanBeSuperseded returns true if re-assignment may cancel this task
func (t *Task) CanBeSuperseded() bool {
	return t.Status == TaskPending || t.Status == TaskAvailable
}

// TechnicianStats счётчики задач техника
type TechnicianStats struct {
	Completed  int
	Pending    int
	InTransfer int
}

// ParseTaskStatus проверяет статус задачи из запроса
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch status := TaskStatus(s); status {
	case TaskPending, TaskAvailable, TaskCompleted, TaskInTransfer, TaskCancelled:
		return status, nil
	default:
		return "", NewFieldError("estado", fmt.Sprintf("unknown task status %q", s))
	}
}

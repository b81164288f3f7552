package task

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача не найдена
	ErrTaskNotFound = errors.New("task.repository: task not found")

	// ErrActiveTaskExists у инсталляции уже есть активная задача
	ErrActiveTaskExists = errors.New("task.repository: installation already has an active task")

	// ErrStatusConflict статус или исполнитель задачи изменились конкурентно
	ErrStatusConflict = errors.New("task.repository: task status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("task.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("task.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("task.repository: failed to scan row")
)

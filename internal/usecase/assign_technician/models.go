package assign_technician

// Request модель запроса на назначение техника
type Request struct {
	InstallationID int64
	TechnicianID   int64
	AdminID        int64
}

// Response модель ответа после назначения
type Response struct {
	InstallationID   int64
	TaskID           int64
	TechnicianID     int64
	Status           string
	SupersededTaskID *int64 // Заменённая задача, если была
}

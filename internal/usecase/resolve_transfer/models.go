package resolve_transfer

// Request модель ответа получателя на запрос передачи
type Request struct {
	TransferID  int64
	RecipientID int64  // Текущий пользователь
	Decision    string // accept | reject
}

// Response модель результата
type Response struct {
	TransferID   int64
	TaskID       int64
	Status       string
	TaskStatus   string
	TechnicianID int64 // Владелец задачи после решения
}

package request_transfer

import "time"

// Request модель запроса на передачу задачи другому технику
type Request struct {
	TaskID      int64
	RequesterID int64 // Текущий пользователь
	RecipientID int64
}

// Response модель ответа с созданным запросом
type Response struct {
	TransferID int64
	TaskID     int64
	Status     string
	TaskStatus string
	CreatedAt  time.Time
}

package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-FieldService/pkg/types"
)

// Request модель запроса на резерв времени
type Request struct {
	InstallationID int64
	UserID         int64            // Текущий пользователь
	Date           time.Time        // Дата (без времени)
	StartTime      types.TimeString // Начало, включительно
	EndTime        types.TimeString // Конец, не включительно
}

// Response модель ответа с созданным резервом
type Response struct {
	ID             int64
	InstallationID int64
	UserID         int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	CreatedAt      time.Time
}

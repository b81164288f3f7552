package domain

import (
	"time"

	"github.com/m04kA/SMC-FieldService/pkg/types"
)

// Reservation booked time slot [StartTime, EndTime) against an installation
type Reservation struct {
	ID             int64
	InstallationID int64
	UserID         int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	CreatedAt      time.Time
}

// Overlaps проверяет пересечение полуинтервалов [StartTime, EndTime) и [start, end)
// Смежные интервалы (конец одного равен началу другого) не пересекаются
func (r *Reservation) Overlaps(start, end types.TimeString) bool {
	return r.StartTime.IsBefore(end) && r.EndTime.IsAfter(start)
}

// IsOwnedBy returns true if the reservation was made by the user
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

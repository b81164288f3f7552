package cut_unpaid_clients

import "time"

// Request параметры запуска
type Request struct {
	Today time.Time // Нулевое значение - текущая дата
}

// Response итог запуска
type Response struct {
	Checked         int
	Cut             int
	Failed          int
	FailedClientIDs []int64
}

package notifier

import "errors"

var (
	// ErrQueueFull очередь переполнена, сообщение отброшено
	ErrQueueFull = errors.New("notifier: queue is full")

	// ErrStopped диспетчер остановлен
	ErrStopped = errors.New("notifier: dispatcher is stopped")
)

package notifier

import "context"

// Sender канал доставки сообщений (WhatsApp)
type Sender interface {
	Send(ctx context.Context, recipient, message string) error
}

// Metrics учёт результатов доставки
type Metrics interface {
	ObserveNotification(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

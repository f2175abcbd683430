package notifyqueue

import "context"

// Handler обрабатывает тело сообщения. Ошибка означает, что сообщение не доставлено.
type Handler interface {
	HandleMessage(ctx context.Context, body []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package notifyqueue

import "errors"

var (
	// ErrConnection возвращается, когда не удалось подключиться к брокеру
	ErrConnection = errors.New("notifyqueue: connection error")

	// ErrPublish возвращается, когда сообщение не удалось опубликовать
	ErrPublish = errors.New("notifyqueue: publish failed")

	// ErrClosed возвращается при использовании закрытого издателя
	ErrClosed = errors.New("notifyqueue: publisher is closed")
)

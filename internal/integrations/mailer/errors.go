package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда у провайдера нет ключа или адреса отправителя
	ErrNotConfigured = errors.New("mailer: provider is not configured")

	// ErrSend возвращается, когда провайдер не принял письмо
	ErrSend = errors.New("mailer: send failed")

	// ErrUnknownProvider возвращается для неизвестного имени провайдера
	ErrUnknownProvider = errors.New("mailer: unknown provider")
)

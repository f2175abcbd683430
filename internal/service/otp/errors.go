package otp

import "errors"

var (
	// ErrDomainNotAllowed возвращается, когда домен email не входит в список разрешенных
	ErrDomainNotAllowed = errors.New("email domain not allowed")

	// ErrTooManyRequests возвращается при превышении лимита отправок
	ErrTooManyRequests = errors.New("too many otp requests")

	// ErrSendFailed возвращается, когда письмо с кодом не удалось отправить
	ErrSendFailed = errors.New("failed to send otp")

	// ErrInvalidOTP возвращается, когда код не найден
	ErrInvalidOTP = errors.New("invalid otp")

	// ErrOTPExpired возвращается, когда код просрочен
	ErrOTPExpired = errors.New("otp expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

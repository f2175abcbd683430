package blockeddates

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда блокировка не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrAlreadyBlocked возвращается, когда (office, hall, date) уже заблокированы
	ErrAlreadyBlocked = errors.New("date is already blocked")

	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall not found")

	// ErrHallOfficeMismatch возвращается, когда зал не принадлежит офису
	ErrHallOfficeMismatch = errors.New("hall does not belong to the office")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

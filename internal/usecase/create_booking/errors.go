package create_booking

import "errors"

var (
	// ErrDateBlocked возвращается, когда зал (или весь офис) заблокирован на дату
	ErrDateBlocked = errors.New("create_booking: hall is blocked for the selected date")

	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("create_booking: hall not found")

	// ErrHallUnavailable возвращается, когда зал заморожен или удален
	ErrHallUnavailable = errors.New("create_booking: hall is not available for booking")

	// ErrOfficeMismatch возвращается, когда зал не принадлежит указанному офису
	ErrOfficeMismatch = errors.New("create_booking: hall does not belong to the office")

	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("create_booking: session not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другим бронированием
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат slot_date, ожидается YYYY-MM-DD"
	msgDateBlocked        = "This hall is blocked for the selected date."
	msgHallNotFound       = "зал не найден"
	msgHallUnavailable    = "зал недоступен для бронирования"
	msgOfficeMismatch     = "зал не принадлежит указанному офису"
	msgSessionNotFound    = "сессия не найдена"
	msgSlotAlreadyBooked  = "выбранный слот уже забронирован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse slot_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: hall_id=%d, date=%s", req.HallID, req.SlotDate)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: hall_id=%d, date=%s, slot=%s",
				req.HallID, req.SlotDate, req.SlotTime)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrSessionNotFound):
			h.logger.Warn("POST /bookings - Session not found: session_id=%d", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrHallUnavailable):
			h.logger.Warn("POST /bookings - Hall unavailable: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgHallUnavailable)

		case errors.Is(err, createBooking.ErrOfficeMismatch):
			h.logger.Warn("POST /bookings - Office mismatch: office_id=%d, hall_id=%d", req.OfficeID, req.HallID)
			handlers.RespondBadRequest(w, msgOfficeMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: hall_id=%d, emp_code=%s, error=%v",
				req.HallID, req.EmpCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, hall_id=%d, emp_code=%s",
		result.ID, req.HallID, req.EmpCode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

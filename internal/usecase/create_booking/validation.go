package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hall must be positive", ErrInvalidInput)
	}

	if req.SessionID <= 0 {
		return fmt.Errorf("%w: session must be positive", ErrInvalidInput)
	}

	if req.OfficeID < 0 {
		return fmt.Errorf("%w: office must not be negative", ErrInvalidInput)
	}

	if req.SlotDate.IsZero() {
		return fmt.Errorf("%w: slot_date is required", ErrInvalidInput)
	}

	slotTime := strings.TrimSpace(req.SlotTime)
	if slotTime == "" {
		return fmt.Errorf("%w: slot_time is required", ErrInvalidInput)
	}
	if len(slotTime) > domain.MaxSlotTimeLength {
		return fmt.Errorf("%w: slot_time is longer than %d characters", ErrInvalidInput, domain.MaxSlotTimeLength)
	}

	if strings.TrimSpace(req.EmpCode) == "" || strings.TrimSpace(req.EmpName) == "" {
		return fmt.Errorf("%w: emp_code and emp_name are required", ErrInvalidInput)
	}

	if domain.EmailDomain(req.EmpEmail) == "" {
		return fmt.Errorf("%w: emp_email_id is not a valid email", ErrInvalidInput)
	}

	if req.Shift != "" && !domain.Shift(req.Shift).IsValid() {
		return fmt.Errorf("%w: shift must be Day, Mid or Night", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}

// toDomainBooking собирает новое бронирование в статусе Pending
func toDomainBooking(req *Request, officeID int64) *domain.Booking {
	b := &domain.Booking{
		SlotDate:         req.SlotDate,
		SlotTime:         strings.TrimSpace(req.SlotTime),
		OfficeID:         officeID,
		HallID:           req.HallID,
		SessionID:        req.SessionID,
		EmpCode:          strings.TrimSpace(req.EmpCode),
		EmpName:          strings.TrimSpace(req.EmpName),
		EmpEmail:         strings.TrimSpace(req.EmpEmail),
		EmpMobileNo:      req.EmpMobileNo,
		TeamName:         req.TeamName,
		Shift:            domain.Shift(req.Shift),
		ITSupport:        req.ITSupport,
		HRSupport:        req.HRSupport,
		FinanceSupport:   req.FinanceSupport,
		CafeteriaSupport: req.CafeteriaSupport,
		Description:      req.Description,
	}
	b.SetStatus(domain.StatusPending)
	return b
}

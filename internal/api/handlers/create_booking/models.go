package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotDate    string  `json:"slot_date" validate:"required"` // "2024-06-03"
	SlotTime    string  `json:"slot_time" validate:"required,max=50"`
	OfficeID    int64   `json:"office"`
	HallID      int64   `json:"hall" validate:"required,gt=0"`
	SessionID   int64   `json:"session" validate:"required,gt=0"`
	EmpCode     string  `json:"emp_code" validate:"required,max=50"`
	EmpName     string  `json:"emp_name" validate:"required,max=150"`
	EmpEmail    string  `json:"emp_email_id" validate:"required,email"`
	EmpMobileNo string  `json:"emp_mobile_no" validate:"max=20"`
	TeamName    string  `json:"team_name" validate:"max=150"`
	Shift       string  `json:"shift" validate:"required,oneof=Day Mid Night"`
	ITSupport   bool    `json:"it_support"`
	HRSupport   bool    `json:"hr_support"`
	FinSupport  bool    `json:"fin_support"`
	CafSupport  bool    `json:"caf_support"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	slotDate, err := time.Parse(domain.DateFormat, r.SlotDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OfficeID:         r.OfficeID,
		HallID:           r.HallID,
		SessionID:        r.SessionID,
		SlotDate:         slotDate,
		SlotTime:         r.SlotTime,
		EmpCode:          r.EmpCode,
		EmpName:          r.EmpName,
		EmpEmail:         r.EmpEmail,
		EmpMobileNo:      r.EmpMobileNo,
		TeamName:         r.TeamName,
		Shift:            r.Shift,
		ITSupport:        r.ITSupport,
		HRSupport:        r.HRSupport,
		FinanceSupport:   r.FinSupport,
		CafeteriaSupport: r.CafSupport,
		Description:      r.Description,
	}, nil
}

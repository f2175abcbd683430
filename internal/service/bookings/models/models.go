package models

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	BookDate    string  `json:"book_date"` // "2024-06-01"
	SlotDate    string  `json:"slot_date"`
	SlotTime    string  `json:"slot_time"`
	OfficeID    int64   `json:"office"`
	HallID      int64   `json:"hall"`
	SessionID   int64   `json:"session"`
	EmpCode     string  `json:"emp_code"`
	EmpName     string  `json:"emp_name"`
	EmpEmail    string  `json:"emp_email_id"`
	EmpMobileNo string  `json:"emp_mobile_no"`
	TeamName    string  `json:"team_name"`
	Shift       string  `json:"shift"`
	Status      string  `json:"status"`
	Approved    bool    `json:"approved"`
	Description *string `json:"description,omitempty"`

	ITSupport        bool `json:"it_support"`
	HRSupport        bool `json:"hr_support"`
	FinanceSupport   bool `json:"fin_support"`
	CafeteriaSupport bool `json:"caf_support"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SuggestedSlotResponse альтернативный слот
type SuggestedSlotResponse struct {
	Date     string `json:"date"`
	SlotTime string `json:"slot_time"`
}

// RejectResponse ответ на отклонение: бронирование и предложенные слоты
type RejectResponse struct {
	BookingResponse
	SuggestedSlots []SuggestedSlotResponse `json:"suggested_slots"`
}

// StatsResponse счетчики бронирований по статусам
type StatsResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// BookedSlotResponse занятый слот зала на дату
type BookedSlotResponse struct {
	SlotTime string `json:"slot_time"`
	Status   string `json:"status"`
}

// WorkingHallResponse зал, занятый в текущем получасовом слоте
type WorkingHallResponse struct {
	HallID   int64  `json:"hall_id"`
	HallName string `json:"hall_name"`
	TeamName string `json:"team_name"`
	SlotTime string `json:"slot_time"`
	EmpName  string `json:"emp_name"`
}

// DashboardResponse сводка для панели администратора
type DashboardResponse struct {
	TotalHalls          int64             `json:"total_halls"`
	AvailableHalls      int64             `json:"available_halls"`
	WorkingHalls        int64             `json:"working_halls"`
	UpcomingBookedHalls int64             `json:"upcoming_booked_halls"`
	PendingBookings     int64             `json:"pending_bookings"`
	ApprovedBookings    int64             `json:"approved_bookings"`
	RejectedBookings    int64             `json:"rejected_bookings"`
	CancelledBookings   int64             `json:"cancelled_bookings"`
	UpcomingBookings    []BookingResponse `json:"upcoming_bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		BookDate:         b.BookDate.Format(domain.DateFormat),
		SlotDate:         b.SlotDate.Format(domain.DateFormat),
		SlotTime:         b.SlotTime,
		OfficeID:         b.OfficeID,
		HallID:           b.HallID,
		SessionID:        b.SessionID,
		EmpCode:          b.EmpCode,
		EmpName:          b.EmpName,
		EmpEmail:         b.EmpEmail,
		EmpMobileNo:      b.EmpMobileNo,
		TeamName:         b.TeamName,
		Shift:            string(b.Shift),
		Status:           string(b.Status),
		Approved:         b.Approved,
		Description:      b.Description,
		ITSupport:        b.ITSupport,
		HRSupport:        b.HRSupport,
		FinanceSupport:   b.FinanceSupport,
		CafeteriaSupport: b.CafeteriaSupport,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO.
// Пустой список сериализуется как [], а не null.
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp = append(resp, *br)
		}
	}
	return resp
}

// FromSuggestedSlots конвертирует предложенные слоты
func FromSuggestedSlots(slots []domain.SuggestedSlot) []SuggestedSlotResponse {
	resp := make([]SuggestedSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, SuggestedSlotResponse{
			Date:     s.Date.Format(domain.DateFormat),
			SlotTime: s.TimeLabel,
		})
	}
	return resp
}

// FromBookedSlots конвертирует занятые слоты
func FromBookedSlots(slots []domain.BookedSlot) []BookedSlotResponse {
	resp := make([]BookedSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, BookedSlotResponse{SlotTime: s.SlotTime, Status: string(s.Status)})
	}
	return resp
}

// FromDashboardStats конвертирует сводку
func FromDashboardStats(s *domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalHalls:          s.TotalHalls,
		AvailableHalls:      s.AvailableHalls,
		WorkingHalls:        s.FrozenHalls,
		UpcomingBookedHalls: s.UpcomingBookedHalls,
		PendingBookings:     s.Pending,
		ApprovedBookings:    s.Approved,
		RejectedBookings:    s.Rejected,
		CancelledBookings:   s.Cancelled,
		UpcomingBookings:    FromDomainBookingList(s.UpcomingBookings),
	}
}

package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusApproved  BookingStatus = "Approved"
	StatusCancelled BookingStatus = "Cancelled"
	StatusRejected  BookingStatus = "Rejected"
)

// IsValid reports whether s is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Shift is the working shift of the employee requesting the hall
type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftMid   Shift = "Mid"
	ShiftNight Shift = "Night"
)

// IsValid reports whether s is one of the known shifts
func (s Shift) IsValid() bool {
	return s == ShiftDay || s == ShiftMid || s == ShiftNight
}

// Booking represents a hall booking request
type Booking struct {
	ID        int64
	BookDate  time.Time
	SlotDate  time.Time
	SlotTime  string // free-text time label, e.g. "09:00-10:00"
	OfficeID  int64
	HallID    int64
	SessionID int64

	// Employee identity
	EmpCode     string
	EmpName     string
	EmpEmail    string
	EmpMobileNo string
	TeamName    string
	Shift       Shift

	ITSupport        bool
	HRSupport        bool
	FinanceSupport   bool
	CafeteriaSupport bool

	Status      BookingStatus
	Approved    bool
	Description *string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetStatus changes the status and keeps Approved in sync with it
func (b *Booking) SetStatus(status BookingStatus) {
	b.Status = status
	b.Approved = ApprovedFor(status)
}

// ApprovedFor returns the derived approved flag for a status
func ApprovedFor(status BookingStatus) bool {
	return status == StatusApproved
}

// SlotKey returns the slot this booking occupies
func (b *Booking) SlotKey() SlotKey {
	return SlotKey{HallID: b.HallID, Date: b.SlotDate, TimeLabel: b.SlotTime}
}

// BookingFilter filter for booking lists
type BookingFilter struct {
	EmpCode   *string
	EmpEmail  *string
	Status    *BookingStatus
	FromDate  *time.Time // slot_date >= FromDate
	HallID    *int64
	OfficeID  *int64
	SlotDate  *time.Time
	SlotTime  *string
	SessionID *int64
	Category  *HallCategory
	Limit     uint64
}

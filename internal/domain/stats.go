package domain

import "time"

// BookingStats counts bookings per status
type BookingStats struct {
	Pending  int64
	Approved int64
	Rejected int64
}

// StatusCounts counts of non-deleted bookings per status
type StatusCounts map[BookingStatus]int64

// DashboardFilter optional filters for the admin dashboard
type DashboardFilter struct {
	OfficeID  *int64
	SlotDate  *time.Time
	Category  *HallCategory
	SessionID *int64
}

// DashboardStats admin dashboard summary
type DashboardStats struct {
	TotalHalls          int64
	AvailableHalls      int64
	FrozenHalls         int64
	UpcomingBookedHalls int64
	Pending             int64
	Approved            int64
	Rejected            int64
	Cancelled           int64
	UpcomingBookings    []*Booking
}

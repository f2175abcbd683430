package domain

import "time"

// BlockedDate denies bookings for a hall, or for the whole office when HallID is nil
type BlockedDate struct {
	ID          int64
	OfficeID    int64
	HallID      *int64
	BlockedDate time.Time
	Reason      *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOfficeWide returns true if the entry blocks every hall of the office
func (b *BlockedDate) IsOfficeWide() bool {
	return b.HallID == nil
}

// BlockedDateFilter range filter for blocked dates
type BlockedDateFilter struct {
	StartDate time.Time
	EndDate   *time.Time
	HallID    *int64
}

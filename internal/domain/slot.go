package domain

import (
	"fmt"
	"time"
)

// SlotStatus availability of a slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "Available"
	SlotBooked    SlotStatus = "Booked"
)

// IsValid reports whether s is Available or Booked
func (s SlotStatus) IsValid() bool {
	return s == SlotAvailable || s == SlotBooked
}

// SlotKey identifies a slot. Uniqueness is scoped per hall.
type SlotKey struct {
	HallID    int64
	Date      time.Time
	TimeLabel string
}

// Slot is a bookable (hall, date, time-label) unit
type Slot struct {
	ID        int64
	HallID    int64
	Date      time.Time
	TimeLabel string
	Status    SlotStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the slot key
func (s *Slot) Key() SlotKey {
	return SlotKey{HallID: s.HallID, Date: s.Date, TimeLabel: s.TimeLabel}
}

// IsAvailable returns true if the slot can be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// SuggestedSlot is an alternative (date, time-label) proposed on rejection
type SuggestedSlot struct {
	Date      time.Time
	TimeLabel string
}

// BookedSlot is the public projection of a hall's booking on a date
type BookedSlot struct {
	SlotTime string
	Status   BookingStatus
}

// SlotIntervalMinutes is the length of the half-hour slots used in time labels
const SlotIntervalMinutes = 30

// CurrentSlotLabel returns the label of the half-hour slot containing t,
// in the 12-hour form stored by the booking UI, e.g. "3:30 PM - 4:00 PM".
func CurrentSlotLabel(t time.Time) string {
	start := t.Truncate(time.Minute).Add(-time.Duration(t.Minute()%SlotIntervalMinutes) * time.Minute)
	end := start.Add(SlotIntervalMinutes * time.Minute)
	return fmt.Sprintf("%s - %s", clockLabel(start), clockLabel(end))
}

func clockLabel(t time.Time) string {
	return fmt.Sprintf("%d:%02d %s", (t.Hour()+11)%12+1, t.Minute(), t.Format("PM"))
}

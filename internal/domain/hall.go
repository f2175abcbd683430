package domain

import "time"

// HallCategory kind of space
type HallCategory string

const (
	CategoryCabin  HallCategory = "CABIN"
	CategoryRoom   HallCategory = "ROOM"
	CategoryHall   HallCategory = "HALL"
	CategoryFloor  HallCategory = "FLOOR"
	CategoryOpen   HallCategory = "OPEN"
	CategoryCSuite HallCategory = "CSUITE"
)

// HallCategoryLabels category codes with display labels, in display order
var HallCategoryLabels = []struct {
	Code  HallCategory
	Label string
}{
	{CategoryCabin, "Cabin"},
	{CategoryRoom, "Room"},
	{CategoryHall, "Hall"},
	{CategoryFloor, "Floor"},
	{CategoryOpen, "Open"},
	{CategoryCSuite, "CSuite"},
}

// IsValid reports whether c is a known category
func (c HallCategory) IsValid() bool {
	for _, l := range HallCategoryLabels {
		if l.Code == c {
			return true
		}
	}
	return false
}

// Amenities available in a hall
type Amenities struct {
	WiFi              bool
	TV                bool
	Whiteboard        bool
	Speaker           bool
	Mic               bool
	ExtensionPowerBox bool
	Stationaries      bool
	ChairsTables      bool
}

// Hall represents a bookable space owned by an office
type Hall struct {
	ID        int64
	OfficeID  int64
	HallCode  string
	HallName  string
	Category  HallCategory
	Capacity  int
	Amenities Amenities
	IsFrozen  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if bookings may be created for the hall
func (h *Hall) IsBookable() bool {
	return !h.IsDeleted && !h.IsFrozen
}

// HallFilter filter for hall counts
type HallFilter struct {
	OfficeID *int64
	Category *HallCategory
	Frozen   *bool
}

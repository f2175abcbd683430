package slots

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// SlotResponse слот реестра
type SlotResponse struct {
	ID         int64     `json:"id"`
	HallID     int64     `json:"hall"`
	SlotDate   string    `json:"slot_date"`
	SlotTime   string    `json:"slot_time"`
	SlotStatus string    `json:"slot_status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func fromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		HallID:     s.HallID,
		SlotDate:   s.Date.Format(domain.DateFormat),
		SlotTime:   s.TimeLabel,
		SlotStatus: string(s.Status),
		UpdatedAt:  s.UpdatedAt,
	}
}

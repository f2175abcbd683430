package create_blocked_date

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/service/blockeddates"
)

// CreateBlockedDateRequest HTTP request model; hall == null блокирует весь офис
type CreateBlockedDateRequest struct {
	OfficeID    int64   `json:"office" validate:"required,gt=0"`
	HallID      *int64  `json:"hall,omitempty" validate:"omitempty,gt=0"`
	BlockedDate string  `json:"blocked_date" validate:"required"`
	Reason      *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// BlockedDateResponse HTTP response model
type BlockedDateResponse struct {
	ID          int64     `json:"id"`
	OfficeID    int64     `json:"office"`
	HallID      *int64    `json:"hall"`
	BlockedDate string    `json:"blocked_date"`
	Reason      *string   `json:"reason"`
	CreatedBy   *string   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос к сервису
func (r *CreateBlockedDateRequest) ToServiceRequest(createdBy string) (*blockeddates.CreateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.BlockedDate)
	if err != nil {
		return nil, err
	}

	return &blockeddates.CreateRequest{
		OfficeID:  r.OfficeID,
		HallID:    r.HallID,
		Date:      date,
		Reason:    r.Reason,
		CreatedBy: createdBy,
	}, nil
}

// FromDomain конвертирует блокировку в HTTP response
func FromDomain(b *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:          b.ID,
		OfficeID:    b.OfficeID,
		HallID:      b.HallID,
		BlockedDate: b.BlockedDate.Format(domain.DateFormat),
		Reason:      b.Reason,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
	}
}

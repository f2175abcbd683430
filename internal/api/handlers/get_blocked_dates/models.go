package get_blocked_dates

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

var errMissingStartDate = errors.New("start_date is missing")

// BlockedDateResponse HTTP response model
type BlockedDateResponse struct {
	ID          int64   `json:"id"`
	OfficeID    int64   `json:"office"`
	HallID      *int64  `json:"hall"`
	BlockedDate string  `json:"blocked_date"`
	Reason      *string `json:"reason"`
}

// ToFilter формирует фильтр из query параметров.
// hall_id=all или отсутствие параметра означают все залы.
func ToFilter(r *http.Request) (domain.BlockedDateFilter, error) {
	var filter domain.BlockedDateFilter

	start, err := handlers.QueryDate(r, "start_date")
	if err != nil {
		return filter, fmt.Errorf("invalid start_date: %w", err)
	}
	if start == nil {
		return filter, errMissingStartDate
	}
	filter.StartDate = *start

	end, err := handlers.QueryDate(r, "end_date")
	if err != nil {
		return filter, fmt.Errorf("invalid end_date: %w", err)
	}
	filter.EndDate = end

	if raw := strings.TrimSpace(r.URL.Query().Get("hall_id")); raw != "" && !strings.EqualFold(raw, "all") {
		hallID, err := handlers.QueryInt64(r, "hall_id")
		if err != nil {
			return filter, fmt.Errorf("invalid hall_id: %w", err)
		}
		filter.HallID = hallID
	}

	return filter, nil
}

// FromDomainList конвертирует список блокировок в HTTP response
func FromDomainList(items []*domain.BlockedDate) []BlockedDateResponse {
	result := make([]BlockedDateResponse, 0, len(items))
	for _, b := range items {
		result = append(result, BlockedDateResponse{
			ID:          b.ID,
			OfficeID:    b.OfficeID,
			HallID:      b.HallID,
			BlockedDate: b.BlockedDate.Format(domain.DateFormat),
			Reason:      b.Reason,
		})
	}
	return result
}

package get_dashboard_stats

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// ToFilter формирует фильтр дашборда из query параметров
// Query params: office_id, slot_date, category, session_id (все опциональны)
func ToFilter(r *http.Request) (domain.DashboardFilter, error) {
	var filter domain.DashboardFilter

	officeID, err := handlers.QueryInt64(r, "office_id")
	if err != nil {
		return filter, fmt.Errorf("invalid office_id: %w", err)
	}
	filter.OfficeID = officeID

	slotDate, err := handlers.QueryDate(r, "slot_date")
	if err != nil {
		return filter, fmt.Errorf("invalid slot_date: %w", err)
	}
	filter.SlotDate = slotDate

	sessionID, err := handlers.QueryInt64(r, "session_id")
	if err != nil {
		return filter, fmt.Errorf("invalid session_id: %w", err)
	}
	filter.SessionID = sessionID

	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		category := domain.HallCategory(strings.ToUpper(raw))
		if !category.IsValid() {
			return filter, fmt.Errorf("invalid category %q", raw)
		}
		filter.Category = &category
	}

	return filter, nil
}

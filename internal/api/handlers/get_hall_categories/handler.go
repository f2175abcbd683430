package get_hall_categories

import (
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// CategoryResponse код категории зала с подписью
type CategoryResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/hall-categories
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	result := make([]CategoryResponse, 0, len(domain.HallCategoryLabels))
	for _, c := range domain.HallCategoryLabels {
		result = append(result, CategoryResponse{Code: string(c.Code), Label: c.Label})
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

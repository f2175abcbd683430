package get_hall_booked_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	called bool
	hallID int64
	date   time.Time
	err    error
}

func (f *fakeService) HallBookedSlots(_ context.Context, hallID int64, date time.Time) ([]models.BookedSlotResponse, error) {
	f.called = true
	f.hallID, f.date = hallID, date
	if f.err != nil {
		return nil, f.err
	}
	return []models.BookedSlotResponse{{SlotTime: "09:00-10:00", Status: "Approved"}}, nil
}

func request(target, hallID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return mux.SetURLVars(req, map[string]string{"hallId": hallID})
}

func TestHandle_MissingDate(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, request("/api/v1/halls/7/booked-slots", "7"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"date parameter is required"}`, rec.Body.String())
	assert.False(t, svc.called)
}

func TestHandle_ReturnsSlots(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, request("/api/v1/halls/7/booked-slots?date=2024-06-03", "7"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.hallID)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), svc.date)
	assert.JSONEq(t, `[{"slot_time":"09:00-10:00","status":"Approved"}]`, rec.Body.String())
}

func TestHandle_HallNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{err: bookings.ErrHallNotFound}, nopLogger{}).
		Handle(rec, request("/api/v1/halls/9/booked-slots?date=2024-06-03", "9"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidHallID(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{}, nopLogger{}).Handle(rec, request("/api/v1/halls/x/booked-slots?date=2024-06-03", "x"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

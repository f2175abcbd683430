package get_current_working_halls

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	halls []models.WorkingHallResponse
	err   error
}

func (f fakeService) CurrentWorkingHalls(context.Context) ([]models.WorkingHallResponse, error) {
	return f.halls, f.err
}

func serve(svc BookingService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/current-working-halls", nil))
	return rec
}

func TestHandle_ReturnsHalls(t *testing.T) {
	rec := serve(fakeService{halls: []models.WorkingHallResponse{
		{HallID: 3, HallName: "Auditorium", TeamName: "HR", SlotTime: "3:30 PM - 4:00 PM", EmpName: "Ravi"},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"hall_id":3,"hall_name":"Auditorium","team_name":"HR","slot_time":"3:30 PM - 4:00 PM","emp_name":"Ravi"}]`,
		rec.Body.String())
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	rec := serve(fakeService{halls: []models.WorkingHallResponse{}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_ServiceError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: errors.New("boom")}).Code)
}

package get_hall_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

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
	hallID int64
	err    error
}

func (f *fakeService) HallBookings(_ context.Context, hallID int64) ([]models.BookingResponse, error) {
	f.hallID = hallID
	if f.err != nil {
		return nil, f.err
	}
	return []models.BookingResponse{{ID: 1, HallID: hallID, Status: "Pending"}}, nil
}

func serve(svc BookingService, hallID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/halls/"+hallID+"/bookings", nil)
	req = mux.SetURLVars(req, map[string]string{"hallId": hallID})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsBookings(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.hallID)
	assert.Contains(t, rec.Body.String(), `"hall":7`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: bookings.ErrHallNotFound}, "9").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}, "9").Code)
}

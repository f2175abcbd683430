package get_blocked_dates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *domain.BlockedDateFilter
}

func (f *fakeService) List(_ context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error) {
	f.got = &filter
	hall := int64(7)
	return []*domain.BlockedDate{
		{ID: 1, OfficeID: 2, HallID: &hall, BlockedDate: filter.StartDate},
		{ID: 2, OfficeID: 2, BlockedDate: filter.StartDate},
	}, nil
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_StartDateRequired(t *testing.T) {
	svc := &fakeService{}
	rec := get(svc, "/api/v1/blocked-dates/by-date?hall_id=7")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"start_date parameter is required"}`, rec.Body.String())
	assert.Nil(t, svc.got)
}

func TestHandle_HallFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantHall *int64
	}{
		{name: "absent", query: "start_date=2024-06-03"},
		{name: "all", query: "start_date=2024-06-03&hall_id=all"},
		{name: "specific", query: "start_date=2024-06-03&hall_id=7", wantHall: ptr.Ptr(int64(7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := get(svc, "/api/v1/blocked-dates/by-date?"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, svc.got)
			assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), svc.got.StartDate)
			assert.Equal(t, tt.wantHall, svc.got.HallID)
		})
	}
}

func TestHandle_OfficeWideEntryHasNullHall(t *testing.T) {
	rec := get(&fakeService{}, "/api/v1/blocked-dates/by-date?start_date=2024-06-03")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hall":null`)
	assert.Contains(t, rec.Body.String(), `"hall":7`)
}

package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*models.BookingResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: 11, HallID: req.HallID, SlotDate: "2024-06-03", Status: "Pending"}, nil
}

const validBody = `{
	"slot_date": "2024-06-03",
	"slot_time": "09:00-10:00",
	"office": 2,
	"hall": 7,
	"session": 1,
	"emp_code": "E100",
	"emp_name": "Asha",
	"emp_email_id": "asha@vdartinc.com",
	"shift": "Day",
	"it_support": true
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(NewHandler(uc, nopLogger{}), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.HallID)
	assert.Equal(t, "Day", uc.got.Shift)
	assert.True(t, uc.got.ITSupport)
	assert.Equal(t, "2024-06-03", uc.got.SlotDate.Format("2006-01-02"))
	assert.Contains(t, rec.Body.String(), `"status":"Pending"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "blocked date",
			err:        fmt.Errorf("%w: hall 7 on 2024-06-03", createBooking.ErrDateBlocked),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"This hall is blocked for the selected date."}`,
		},
		{
			name:       "slot booked",
			err:        createBooking.ErrSlotAlreadyBooked,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "hall not found",
			err:        createBooking.ErrHallNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "session not found",
			err:        createBooking.ErrSessionNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "frozen hall",
			err:        createBooking.ErrHallUnavailable,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal",
			err:        createBooking.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandle_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "unknown field", body: `{"slot_date":"2024-06-03","foo":1}`},
		{name: "bad shift", body: strings.Replace(validBody, `"Day"`, `"Evening"`, 1)},
		{name: "bad email", body: strings.Replace(validBody, `asha@vdartinc.com`, `asha`, 1)},
		{name: "bad date", body: strings.Replace(validBody, `2024-06-03`, `03/06/2024`, 1)},
		{name: "no hall", body: strings.Replace(validBody, `"hall": 7,`, ``, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := post(NewHandler(uc, nopLogger{}), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

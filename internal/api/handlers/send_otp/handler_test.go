package send_otp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HallBookingService/internal/service/otp"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) Send(context.Context, string) error { return f.err }

func TestHandle(t *testing.T) {
	const body = `{"email":"asha@vdartinc.com"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "sent", wantStatus: http.StatusOK, wantBody: `{"message":"OTP sent successfully"}`},
		{
			name:       "domain",
			err:        otp.ErrDomainNotAllowed,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email domain not allowed"}`,
		},
		{
			name:       "mail failure",
			err:        fmt.Errorf("%w: %v", otp.ErrSendFailed, errors.New("smtp down")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to send OTP: smtp down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/send-otp", strings.NewReader(body))

			NewHandler(fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}

	t.Run("throttled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/send-otp", strings.NewReader(body))

		NewHandler(fakeService{err: otp.ErrTooManyRequests}, nopLogger{}).Handle(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

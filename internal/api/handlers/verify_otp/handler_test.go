package verify_otp

import (
	"context"
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

func (f fakeService) Verify(context.Context, string, string) error { return f.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "verified",
			body:       `{"email":"asha@vdartinc.com","otp":"123456"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"OTP verified successfully"}`,
		},
		{
			name:       "invalid",
			body:       `{"email":"asha@vdartinc.com","otp":"123456"}`,
			err:        otp.ErrInvalidOTP,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid OTP"}`,
		},
		{
			name:       "expired",
			body:       `{"email":"asha@vdartinc.com","otp":"123456"}`,
			err:        otp.ErrOTPExpired,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"OTP expired"}`,
		},
		{
			name:       "malformed code",
			body:       `{"email":"asha@vdartinc.com","otp":"12ab"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid OTP"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/verify-otp", strings.NewReader(tt.body))

			NewHandler(fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

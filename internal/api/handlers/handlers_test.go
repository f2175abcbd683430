package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "emp_code parameter is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"emp_code parameter is required"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Status string `json:"status"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"Booked"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Booked", dst.Status)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	type request struct {
		Email string `json:"emp_email_id" validate:"required,email"`
		Shift string `json:"shift" validate:"required,oneof=Day Mid Night"`
	}

	err := ValidateStruct(&request{Email: "asha", Shift: "Evening"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emp_email_id must be a valid email")
	assert.Contains(t, err.Error(), "shift must be one of: Day Mid Night")

	assert.NoError(t, ValidateStruct(&request{Email: "asha@vdartinc.com", Shift: "Mid"}))
}

func TestQueryDate(t *testing.T) {
	d, err := QueryDate(httptest.NewRequest(http.MethodGet, "/?date=2024-06-03", nil), "date")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-06-03", d.Format("2006-01-02"))

	d, err = QueryDate(httptest.NewRequest(http.MethodGet, "/", nil), "date")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = QueryDate(httptest.NewRequest(http.MethodGet, "/?date=june", nil), "date")
	assert.Error(t, err)
}

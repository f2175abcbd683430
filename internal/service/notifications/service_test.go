package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type flakyMailer struct {
	failures int
	calls    int
	last     domain.EmailMessage
}

func (m *flakyMailer) Send(_ context.Context, msg domain.EmailMessage) error {
	m.calls++
	m.last = msg
	if m.calls <= m.failures {
		return errors.New("provider unavailable")
	}
	return nil
}

type recordObserver struct {
	kinds []string
	errs  []error
}

func (r *recordObserver) ObserveNotification(kind string, err error) {
	r.kinds = append(r.kinds, kind)
	r.errs = append(r.errs, err)
}

func newTestService(m Mailer, obs DeliveryObserver, attempts int) (*Service, *[]time.Duration) {
	var waits []time.Duration
	s := NewService(m, obs, attempts, 100*time.Millisecond, nopLogger{})
	s.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return s, &waits
}

func rejection() domain.BookingNotification {
	return domain.BookingNotification{
		Kind:      domain.NotificationRejection,
		BookingID: 11,
		EmpName:   "Asha",
		EmpEmail:  "asha@vdartinc.com",
		HallName:  "Board Room",
		SlotDate:  time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		SlotTime:  "09:00-10:00",
		Reason:    "room unavailable",
		Suggestions: []domain.SuggestedSlot{
			{Date: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), TimeLabel: "10:00-11:00"},
		},
	}
}

func TestRender_Confirmation(t *testing.T) {
	n := rejection()
	n.Kind = domain.NotificationConfirmation

	msg, err := Render(n)
	require.NoError(t, err)
	assert.Equal(t, "Booking Confirmed: Board Room on 2024-06-03", msg.Subject)
	assert.Equal(t, "asha@vdartinc.com", msg.To)
	assert.Contains(t, msg.Body, "Dear Asha,")
	assert.Contains(t, msg.Body, "Your booking for Board Room on 2024-06-03 at 09:00-10:00 has been confirmed.")
	assert.NotContains(t, msg.Body, "Reason:")
}

func TestRender_Rejection(t *testing.T) {
	msg, err := Render(rejection())
	require.NoError(t, err)
	assert.Equal(t, "Booking Rejected: Board Room on 2024-06-03", msg.Subject)
	assert.Contains(t, msg.Body, "has been rejected.")
	assert.Contains(t, msg.Body, "Reason: room unavailable")
	assert.Contains(t, msg.Body, "Suggested Next Available Slots:\n- 2024-06-04 at 10:00-11:00\n")
}

func TestRender_RejectionWithoutReasonOrSuggestions(t *testing.T) {
	n := rejection()
	n.Reason = ""
	n.Suggestions = nil

	msg, err := Render(n)
	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Reason: No specific reason provided.")
	assert.NotContains(t, msg.Body, "Suggested Next Available Slots")
}

func TestRender_LongReasonTruncatedByRunes(t *testing.T) {
	n := rejection()
	n.Reason = strings.Repeat("п", maxReasonRunes+50)

	msg, err := Render(n)
	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Reason: "+strings.Repeat("п", maxReasonRunes)+"...\n")
	assert.NotContains(t, msg.Body, strings.Repeat("п", maxReasonRunes+1))
}

func TestRender_UnknownKind(t *testing.T) {
	n := rejection()
	n.Kind = "reminder"

	_, err := Render(n)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	mailer := &flakyMailer{failures: 2}
	obs := &recordObserver{}
	s, waits := newTestService(mailer, obs, 3)

	require.NoError(t, s.Deliver(context.Background(), rejection()))
	assert.Equal(t, 3, mailer.calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *waits)
	require.Len(t, obs.errs, 1)
	assert.NoError(t, obs.errs[0])
	assert.Equal(t, "rejection", obs.kinds[0])
}

func TestDeliver_GivesUpAfterMaxAttempts(t *testing.T) {
	mailer := &flakyMailer{failures: 10}
	obs := &recordObserver{}
	s, waits := newTestService(mailer, obs, 3)

	err := s.Deliver(context.Background(), rejection())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, 3, mailer.calls)
	assert.Len(t, *waits, 2)
	require.Len(t, obs.errs, 1)
	assert.Error(t, obs.errs[0])
}

func TestDeliver_StopsWhenContextIsDone(t *testing.T) {
	mailer := &flakyMailer{failures: 10}
	s := NewService(mailer, nil, 5, time.Hour, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Deliver(ctx, rejection())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, 1, mailer.calls)
}

func TestHandleMessage(t *testing.T) {
	mailer := &flakyMailer{}
	s, _ := newTestService(mailer, nil, 1)

	body, err := json.Marshal(rejection())
	require.NoError(t, err)

	require.NoError(t, s.HandleMessage(context.Background(), body))
	assert.Equal(t, "Booking Rejected: Board Room on 2024-06-03", mailer.last.Subject)

	assert.ErrorIs(t, s.HandleMessage(context.Background(), []byte("{")), ErrBadPayload)
}

package availability

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlots struct {
	byDate  map[string][]string // date -> available time labels, already ordered
	every   []string            // labels available on every date when byDate has no entry
	err     error
	queried []time.Time
}

func (f *fakeSlots) ListAvailable(_ context.Context, hallID int64, date time.Time) ([]*domain.Slot, error) {
	f.queried = append(f.queried, date)
	if f.err != nil {
		return nil, f.err
	}
	labels, ok := f.byDate[date.Format(domain.DateFormat)]
	if !ok {
		labels = f.every
	}
	slots := make([]*domain.Slot, 0, len(labels))
	for _, l := range labels {
		slots = append(slots, &domain.Slot{HallID: hallID, Date: date, TimeLabel: l, Status: domain.SlotAvailable})
	}
	return slots, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2024-06-01 is a Saturday
func newService(repo SlotRepository, now time.Time) *Service {
	s := NewService(repo, time.UTC, domain.DefaultSuggestionWindowDays, nopLogger{})
	s.timeProvider = fixedTime{t: now}
	return s
}

func TestSuggest_NeverReturnsSunday(t *testing.T) {
	repo := &fakeSlots{every: []string{"09:00-10:00"}}
	s := newService(repo, day(2024, 6, 1).Add(10*time.Hour))

	got, err := s.Suggest(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, got, 10)

	for _, slot := range got {
		assert.NotEqual(t, time.Sunday, slot.Date.Weekday(), "suggested %s", slot.Date)
	}
	for _, d := range repo.queried {
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
	assert.Equal(t, day(2024, 6, 1), got[0].Date)
	assert.Equal(t, day(2024, 6, 3), got[1].Date)
}

func TestSuggest_EmptyWindowIsNotAnError(t *testing.T) {
	repo := &fakeSlots{}
	s := newService(repo, day(2024, 6, 1))

	got, err := s.Suggest(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	// 30 days from 2024-06-01 include five Sundays
	assert.Len(t, repo.queried, 25)
	assert.Equal(t, day(2024, 6, 29), repo.queried[len(repo.queried)-1])
}

func TestSuggest_StopsAtCountAndKeepsOrder(t *testing.T) {
	repo := &fakeSlots{byDate: map[string][]string{
		"2024-06-03": {"09:00-10:00", "10:00-11:00", "14:00-15:00"},
		"2024-06-05": {"11:00-12:00", "12:00-13:00"},
	}}
	s := newService(repo, day(2024, 6, 3).Add(8*time.Hour))

	got, err := s.Suggest(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []domain.SuggestedSlot{
		{Date: day(2024, 6, 3), TimeLabel: "09:00-10:00"},
		{Date: day(2024, 6, 3), TimeLabel: "10:00-11:00"},
		{Date: day(2024, 6, 3), TimeLabel: "14:00-15:00"},
		{Date: day(2024, 6, 5), TimeLabel: "11:00-12:00"},
	}, got)

	// the scan stops as soon as enough slots are found
	assert.Equal(t, day(2024, 6, 5), repo.queried[len(repo.queried)-1])
}

func TestSuggest_DefaultCount(t *testing.T) {
	repo := &fakeSlots{every: []string{"09:00-10:00"}}
	s := newService(repo, day(2024, 6, 3))

	got, err := s.Suggest(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, got, domain.DefaultSuggestionCount)
}

func TestSuggest_PropagatesRepositoryError(t *testing.T) {
	repo := &fakeSlots{err: errors.New("db down")}
	s := newService(repo, day(2024, 6, 3))

	_, err := s.Suggest(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestScan_TodayUsesConfiguredTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	repo := &fakeSlots{every: []string{"09:00-10:00"}}
	s := NewService(repo, loc, 30, nopLogger{})
	// 20:00 UTC on Sunday 2024-06-02 is already Monday 01:30 in Kolkata
	s.timeProvider = fixedTime{t: time.Date(2024, 6, 2, 20, 0, 0, 0, time.UTC)}

	for slot, err := range s.Scan(context.Background(), 1) {
		require.NoError(t, err)
		assert.Equal(t, day(2024, 6, 3), slot.Date)
		break
	}
}

func TestScan_IsSingleUse(t *testing.T) {
	repo := &fakeSlots{every: []string{"09:00-10:00"}}
	s := newService(repo, day(2024, 6, 3))
	seq := s.Scan(context.Background(), 1)

	var first, second domain.SuggestedSlot
	for slot := range seq {
		first = slot
		break
	}
	for slot := range seq {
		second = slot
		break
	}
	assert.Equal(t, day(2024, 6, 3), first.Date)
	assert.Equal(t, day(2024, 6, 4), second.Date)

	// 30 days from Monday 2024-06-03 hold four Sundays, two slots are already consumed
	rest := 0
	for _, err := range seq {
		require.NoError(t, err)
		rest++
	}
	assert.Equal(t, 24, rest)

	queried := len(repo.queried)
	for range seq {
		t.Fatal("exhausted sequence must not yield")
	}
	assert.Len(t, repo.queried, queried)
}

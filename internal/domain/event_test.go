package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-06 is a Wednesday.
var wednesday = time.Date(2024, time.March, 6, 19, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

// setLocal pins the local time zone for the rest of the test.
func setLocal(t *testing.T, loc *time.Location) {
	t.Helper()

	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestEventWeekOf(t *testing.T) {
	setLocal(t, time.UTC)
	e := Event{CallTime: wednesday}

	start, end := e.WeekOf()

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2024, time.March, 3, 19, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 10, 19, 0, 0, 0, time.UTC), end)
}

func TestEventWeekOf_UsesLocalTime(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	setLocal(t, est)

	// Saturday evening locally, already Sunday in UTC.
	saturday := time.Date(2024, time.March, 9, 22, 0, 0, 0, est)
	e := Event{CallTime: saturday.UTC()}

	start, end := e.WeekOf()

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, est, start.Location())
	assert.True(t, start.Equal(time.Date(2024, time.March, 3, 22, 0, 0, 0, est)), "start %v", start)
	assert.True(t, end.Equal(time.Date(2024, time.March, 10, 22, 0, 0, 0, est)), "end %v", end)
}

func TestWentToEventTypeDuringWeekOf(t *testing.T) {
	setLocal(t, time.UTC)
	self := Event{ID: 1, Semester: "Spring 2024", Type: "rehearsal", CallTime: wednesday}
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	sectional := func(id uint, callTime time.Time) Event {
		return Event{
			ID:          id,
			Semester:    "Spring 2024",
			Type:        "sectional",
			CallTime:    callTime,
			ReleaseTime: timePtr(callTime.Add(time.Hour)),
		}
	}
	monday := sectional(2, wednesday.AddDate(0, 0, -2))

	t.Run("no candidates", func(t *testing.T) {
		events := []EventAttendance{
			{Event: Event{ID: 3, Semester: "Spring 2024", Type: "rehearsal", CallTime: wednesday.AddDate(0, 0, -1)}},
			{Event: sectional(4, wednesday.AddDate(0, 0, -10))},
			{Event: Event{ID: 5, Semester: "Fall 2023", Type: "sectional", CallTime: wednesday.AddDate(0, 0, -1)}},
		}

		_, ok := self.WentToEventTypeDuringWeekOf(events, nil, "sectional", now)
		assert.False(t, ok)
	})

	t.Run("self is never a candidate", func(t *testing.T) {
		events := []EventAttendance{{Event: self, Attendance: Attendance{DidAttend: true}}}

		_, ok := self.WentToEventTypeDuringWeekOf(events, nil, "rehearsal", now)
		assert.False(t, ok)
	})

	t.Run("attended", func(t *testing.T) {
		events := []EventAttendance{
			{Event: monday, Attendance: Attendance{EventID: monday.ID, DidAttend: false}},
			{Event: sectional(6, wednesday.AddDate(0, 0, 1)), Attendance: Attendance{DidAttend: true}},
		}

		went, ok := self.WentToEventTypeDuringWeekOf(events, nil, "sectional", now)
		require.True(t, ok)
		assert.True(t, went)
	})

	t.Run("approved absence counts", func(t *testing.T) {
		events := []EventAttendance{{Event: monday}}
		absences := []AbsenceRequest{{EventID: monday.ID, State: AbsenceRequestApproved}}

		went, ok := self.WentToEventTypeDuringWeekOf(events, absences, "sectional", now)
		require.True(t, ok)
		assert.True(t, went)
	})

	t.Run("pending or denied absence does not count", func(t *testing.T) {
		events := []EventAttendance{{Event: monday}}
		absences := []AbsenceRequest{
			{EventID: monday.ID, State: AbsenceRequestPending},
			{EventID: monday.ID, State: AbsenceRequestDenied},
			{EventID: 99, State: AbsenceRequestApproved},
		}

		went, ok := self.WentToEventTypeDuringWeekOf(events, absences, "sectional", now)
		require.True(t, ok)
		assert.False(t, went)
	})

	t.Run("events not yet released are ignored", func(t *testing.T) {
		events := []EventAttendance{{Event: monday, Attendance: Attendance{DidAttend: true}}}
		beforeRelease := monday.CallTime.Add(30 * time.Minute)

		_, ok := self.WentToEventTypeDuringWeekOf(events, nil, "sectional", beforeRelease)
		assert.False(t, ok)
	})

	t.Run("missing release time falls back to call time", func(t *testing.T) {
		noRelease := Event{ID: 7, Semester: "Spring 2024", Type: "sectional", CallTime: wednesday.AddDate(0, 0, -1)}
		events := []EventAttendance{{Event: noRelease}}

		went, ok := self.WentToEventTypeDuringWeekOf(events, nil, "sectional", now)
		require.True(t, ok)
		assert.False(t, went)
	})
}

func TestEventUpdateGig(t *testing.T) {
	perf := wednesday
	uniform := uint(3)

	_, err := EventUpdate{UniformID: &uniform}.Gig(1)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Performance time")

	_, err = EventUpdate{PerformanceTime: &perf}.Gig(1)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Uniform")

	gig, err := EventUpdate{PerformanceTime: &perf, UniformID: &uniform}.Gig(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), gig.EventID)
	assert.Equal(t, uniform, gig.UniformID)
	assert.False(t, gig.Public)
}

func TestEventUpdateHasGigFields(t *testing.T) {
	assert.False(t, EventUpdate{Name: "Rehearsal"}.HasGigFields())

	summary := "A summary"
	assert.True(t, EventUpdate{Summary: &summary}.HasGigFields())
}

func TestEventEndAndMinimal(t *testing.T) {
	e := Event{ID: 4, Name: "Sectional", CallTime: wednesday}
	assert.Equal(t, wednesday, e.End())
	assert.Equal(t, map[string]any{"id": uint(4), "name": "Sectional"}, e.Minimal())

	e.ReleaseTime = timePtr(wednesday.Add(time.Hour))
	assert.Equal(t, wednesday.Add(time.Hour), e.End())
}

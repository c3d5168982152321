package domain

import "time"

type Attendance struct {
	Member       string `json:"member"`
	EventID      uint   `json:"event"`
	ShouldAttend bool   `json:"should_attend"`
	DidAttend    bool   `json:"did_attend"`
	Confirmed    bool   `json:"confirmed"`
	MinutesLate  int    `json:"minutes_late"`
}

// EventAttendance pairs an event with one member's attendance record for it.
type EventAttendance struct {
	Event      Event
	Attendance Attendance
}

type AbsenceRequestState string

const (
	AbsenceRequestPending  AbsenceRequestState = "pending"
	AbsenceRequestApproved AbsenceRequestState = "approved"
	AbsenceRequestDenied   AbsenceRequestState = "denied"
)

type AbsenceRequest struct {
	Member  string              `json:"member"`
	EventID uint                `json:"event"`
	Time    time.Time           `json:"time"`
	Reason  string              `json:"reason"`
	State   AbsenceRequestState `json:"state"`
}

// WentToEventTypeDuringWeekOf reports whether the member went to (or was
// excused from) an event of eventType in the Sunday-to-Sunday week of e.
// Only events whose release time is before the end of that week and before
// now count. ok is false when there is no such event at all.
func (e Event) WentToEventTypeDuringWeekOf(
	semesterEvents []EventAttendance,
	semesterAbsenceRequests []AbsenceRequest,
	eventType string,
	now time.Time,
) (went bool, ok bool) {
	weekStart, weekEnd := e.WeekOf()
	cutoff := weekEnd
	if now.Before(cutoff) {
		cutoff = now
	}

	approved := make(map[uint]bool)
	for _, req := range semesterAbsenceRequests {
		if req.State == AbsenceRequestApproved {
			approved[req.EventID] = true
		}
	}

	for _, ea := range semesterEvents {
		other := ea.Event
		if other.ID == e.ID ||
			other.Semester != e.Semester ||
			!other.CallTime.After(weekStart) ||
			!other.End().Before(cutoff) ||
			other.Type != eventType {
			continue
		}

		ok = true
		if ea.Attendance.DidAttend || approved[other.ID] {
			return true, true
		}
	}

	return false, ok
}

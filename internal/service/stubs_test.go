package service

import (
	"context"
	"testing"
	"time"

	"github.com/gleeclub/grease-api/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

// setLocal pins the local time zone for the rest of the test.
func setLocal(t *testing.T, loc *time.Location) {
	t.Helper()

	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func at(day, hour int) time.Time {
	return time.Date(2026, time.September, day, hour, 0, 0, 0, time.UTC)
}

type stubEventRepo struct {
	found    map[uint]domain.EventWithGig
	listed   []domain.EventWithGig
	spanning []domain.Event
	noIDs    bool
	err      error

	created      []domain.Event
	createdGig   *domain.NewGig
	gigRequestID *uint

	updated       *domain.Event
	updatedGig    *domain.Gig
	insertedGig   bool
	querySemester string
	queryType     string
	queryStart    time.Time
	queryEnd      time.Time
	deleted       uint
}

func (s *stubEventRepo) FindByID(ctx context.Context, id uint) (domain.EventWithGig, error) {
	event, ok := s.found[id]
	if !ok {
		return domain.EventWithGig{}, &domain.NotFoundError{Resource: "event", ID: id}
	}
	return event, nil
}

func (s *stubEventRepo) FindAll(ctx context.Context) ([]domain.EventWithGig, error) {
	return s.listed, s.err
}

func (s *stubEventRepo) FindBySemester(ctx context.Context, semester string) ([]domain.EventWithGig, error) {
	s.querySemester = semester
	return s.listed, s.err
}

func (s *stubEventRepo) FindBySemesterAndType(ctx context.Context, semester, eventType string) ([]domain.EventWithGig, error) {
	s.querySemester = semester
	s.queryType = eventType
	return s.listed, s.err
}

func (s *stubEventRepo) FindOfTypeSpanning(ctx context.Context, semester, eventType string, start, end time.Time) ([]domain.Event, error) {
	s.querySemester = semester
	s.queryType = eventType
	s.queryStart = start
	s.queryEnd = end
	return s.spanning, s.err
}

func (s *stubEventRepo) CreateOccurrences(ctx context.Context, events []domain.Event, gig *domain.NewGig, gigRequestID *uint) ([]uint, error) {
	s.created = events
	s.createdGig = gig
	s.gigRequestID = gigRequestID
	if s.err != nil {
		return nil, s.err
	}
	if s.noIDs {
		return nil, nil
	}

	ids := make([]uint, len(events))
	for i := range events {
		ids[i] = uint(100 + i)
	}
	return ids, nil
}

func (s *stubEventRepo) Update(ctx context.Context, event domain.Event, gig *domain.Gig, insertGig bool) error {
	s.updated = &event
	s.updatedGig = gig
	s.insertedGig = insertGig
	return s.err
}

func (s *stubEventRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := s.found[id]; !ok {
		return &domain.NotFoundError{Resource: "event", ID: id}
	}
	s.deleted = id
	return nil
}

type stubSemesters struct {
	semester domain.Semester
	err      error
	calls    int
}

func (s *stubSemesters) CurrentOrLoadCurrent(ctx context.Context) (domain.Semester, error) {
	s.calls++
	return s.semester, s.err
}

func (s *stubSemesters) FindCurrent(ctx context.Context) (domain.Semester, error) {
	return s.CurrentOrLoadCurrent(ctx)
}

type stubAttendance struct {
	attendance map[uint]domain.Attendance
	semester   []domain.EventAttendance
	absences   []domain.AbsenceRequest
}

func (s *stubAttendance) FindByMemberAndEvent(ctx context.Context, member string, eventID uint) (domain.Attendance, error) {
	a, ok := s.attendance[eventID]
	if !ok {
		return domain.Attendance{}, &domain.NotFoundError{Resource: "attendance", ID: eventID}
	}
	return a, nil
}

func (s *stubAttendance) FindEventAttendanceForMember(ctx context.Context, member, semester string) ([]domain.EventAttendance, error) {
	return s.semester, nil
}

func (s *stubAttendance) FindAbsenceRequestsForMember(ctx context.Context, member, semester string) ([]domain.AbsenceRequest, error) {
	return s.absences, nil
}

type stubUniforms struct{}

func (stubUniforms) FindByID(ctx context.Context, id uint) (domain.Uniform, error) {
	if id != 2 {
		return domain.Uniform{}, &domain.NotFoundError{Resource: "uniform", ID: id}
	}
	return domain.Uniform{ID: 2, Name: "Jackets"}, nil
}

func newTestEventService(repo *stubEventRepo, attendance *stubAttendance) (*EventService, *stubSemesters) {
	semesters := &stubSemesters{semester: domain.Semester{Name: "Fall 2026", StartDate: at(1, 0), Current: true}}
	if attendance == nil {
		attendance = &stubAttendance{}
	}

	svc := NewEventService(repo, semesters, attendance, stubUniforms{})
	return svc, semesters
}

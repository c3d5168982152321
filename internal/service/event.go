package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/pkg/calendar"
)

type EventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.EventWithGig, error)
	FindAll(ctx context.Context) ([]domain.EventWithGig, error)
	FindBySemester(ctx context.Context, semester string) ([]domain.EventWithGig, error)
	FindBySemesterAndType(ctx context.Context, semester, eventType string) ([]domain.EventWithGig, error)
	FindOfTypeSpanning(ctx context.Context, semester, eventType string, start, end time.Time) ([]domain.Event, error)
	// CreateOccurrences inserts all events in one transaction and returns
	// their ids in insertion order.
	CreateOccurrences(ctx context.Context, events []domain.Event, gig *domain.NewGig, gigRequestID *uint) ([]uint, error)
	Update(ctx context.Context, event domain.Event, gig *domain.Gig, insertGig bool) error
	Delete(ctx context.Context, id uint) error
}

type CurrentSemester interface {
	CurrentOrLoadCurrent(ctx context.Context) (domain.Semester, error)
}

type AttendanceRepository interface {
	FindByMemberAndEvent(ctx context.Context, member string, eventID uint) (domain.Attendance, error)
	FindEventAttendanceForMember(ctx context.Context, member, semester string) ([]domain.EventAttendance, error)
	FindAbsenceRequestsForMember(ctx context.Context, member, semester string) ([]domain.AbsenceRequest, error)
}

type UniformRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Uniform, error)
}

// GigOrigin is the gig request an event is created from, together with the
// gig details to attach to every occurrence.
type GigOrigin struct {
	RequestID uint
	Gig       domain.NewGig
}

// FullEvent is an event with its uniform resolved and the caller's
// attendance attached. Uniform is nil for plain events and Attendance is
// nil when the member has no attendance row for the event.
type FullEvent struct {
	domain.EventWithGig
	Uniform    *domain.Uniform
	Attendance *domain.Attendance
}

type EventService struct {
	repo       EventRepository
	semesters  CurrentSemester
	attendance AttendanceRepository
	uniforms   UniformRepository
	now        func() time.Time
}

func NewEventService(
	repo EventRepository,
	semesters CurrentSemester,
	attendance AttendanceRepository,
	uniforms UniformRepository,
) *EventService {
	return &EventService{
		repo:       repo,
		semesters:  semesters,
		attendance: attendance,
		uniforms:   uniforms,
		now:        time.Now,
	}
}

// Create expands newEvent into its occurrences and stores them in one
// transaction. The returned id is the one of the LAST created occurrence,
// not the first; when origin is set, that is also the event the gig request
// gets linked to.
func (s *EventService) Create(ctx context.Context, newEvent domain.NewEvent, origin *GigOrigin) (uint, error) {
	if newEvent.ReleaseTime != nil && !newEvent.ReleaseTime.After(newEvent.CallTime) {
		return 0, domain.NewValidationError("release time must be after call time if it is supplied.")
	}

	period, repeats, err := calendar.ParsePeriod(newEvent.Repeat)
	if err != nil {
		return 0, &domain.ValidationError{Reason: err.Error()}
	}

	occurrences := []calendar.Occurrence{{CallTime: newEvent.CallTime, ReleaseTime: newEvent.ReleaseTime}}
	if repeats {
		if newEvent.RepeatUntil == nil {
			return 0, domain.NewValidationError("Must supply a repeat until time if repeat is supplied.")
		}
		occurrences = calendar.Expand(newEvent.CallTime, newEvent.ReleaseTime, period, *newEvent.RepeatUntil)
	}
	if len(occurrences) == 0 {
		return 0, domain.NewValidationError("the repeat setting would render no events, please check your repeat settings.")
	}

	events := make([]domain.Event, len(occurrences))
	for i, o := range occurrences {
		events[i] = newEvent.Occurrence(o.CallTime, o.ReleaseTime)
	}

	var (
		gig          *domain.NewGig
		gigRequestID *uint
	)
	if origin != nil {
		gig = &origin.Gig
		gigRequestID = &origin.RequestID
	}

	ids, err := s.repo.CreateOccurrences(ctx, events, gig, gigRequestID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CreateOccurrences -> %w", err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: error inserting new event into database", domain.ErrServer)
	}

	lastID := ids[len(ids)-1]
	fields := []zap.Field{
		zap.Uint("eventID", lastID),
		zap.Int("occurrences", len(ids)),
		zap.String("semester", newEvent.Semester),
	}
	if gigRequestID != nil {
		fields = append(fields, zap.Uint("gigRequestID", *gigRequestID))
	}
	zap.L().Info("created event", fields...)

	return lastID, nil
}

// Update overwrites the event's fields. Gig fields update the existing gig,
// or promote a plain event to a gig when any of them is present.
func (s *EventService) Update(ctx context.Context, id uint, update domain.EventUpdate) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	var (
		gig       *domain.Gig
		insertGig bool
	)
	switch {
	case existing.IsGig():
		if update.Public == nil {
			update.Public = &existing.Gig.Public
		}
		g, err := update.Gig(id)
		if err != nil {
			return err
		}
		gig = &g
	case update.HasGigFields():
		g, err := update.Gig(id)
		if err != nil {
			return err
		}
		gig = &g
		insertGig = true
	}

	if err = s.repo.Update(ctx, update.Event(id), gig, insertGig); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	zap.L().Info("updated event", zap.Uint("eventID", id), zap.Bool("promotedToGig", insertGig))

	return nil
}

func (s *EventService) Load(ctx context.Context, id uint) (domain.EventWithGig, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.EventWithGig{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// LoadFull loads the event with its uniform and member's attendance.
func (s *EventService) LoadFull(ctx context.Context, id uint, member string) (FullEvent, error) {
	event, err := s.Load(ctx, id)
	if err != nil {
		return FullEvent{}, err
	}

	full := FullEvent{EventWithGig: event}

	if event.IsGig() {
		uniform, err := s.uniforms.FindByID(ctx, event.Gig.UniformID)
		if err != nil {
			return FullEvent{}, fmt.Errorf("s.uniforms.FindByID -> %w", err)
		}
		full.Uniform = &uniform
	}

	attendance, err := s.attendance.FindByMemberAndEvent(ctx, member, id)
	switch {
	case err == nil:
		full.Attendance = &attendance
	case errors.Is(err, domain.ErrNotFound):
	default:
		return FullEvent{}, fmt.Errorf("s.attendance.FindByMemberAndEvent -> %w", err)
	}

	return full, nil
}

func (s *EventService) LoadAll(ctx context.Context) ([]domain.EventWithGig, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) LoadAllForCurrentSemester(ctx context.Context) ([]domain.EventWithGig, error) {
	semester, err := s.semesters.CurrentOrLoadCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.semesters.CurrentOrLoadCurrent -> %w", err)
	}

	events, err := s.repo.FindBySemester(ctx, semester.Name)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySemester -> %w", err)
	}

	return events, nil
}

func (s *EventService) LoadAllOfTypeForCurrentSemester(ctx context.Context, eventType string) ([]domain.EventWithGig, error) {
	semester, err := s.semesters.CurrentOrLoadCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.semesters.CurrentOrLoadCurrent -> %w", err)
	}

	events, err := s.repo.FindBySemesterAndType(ctx, semester.Name, eventType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySemesterAndType -> %w", err)
	}

	return events, nil
}

// LoadSectionalsTheWeekOf returns the sectionals of the event's semester that
// start after the start of its week and are released after the week's end.
func (s *EventService) LoadSectionalsTheWeekOf(ctx context.Context, id uint) ([]domain.Event, error) {
	event, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	start, end := event.Event.WeekOf()
	sectionals, err := s.repo.FindOfTypeSpanning(ctx, event.Event.Semester, "sectional", start, end)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOfTypeSpanning -> %w", err)
	}

	return sectionals, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	zap.L().Info("deleted event", zap.Uint("eventID", id))

	return nil
}

// WentToEventTypeDuringWeekOf reports whether member attended, or was excused
// from, an event of eventType in the week of the given event. ok is false
// when no such event has finished yet.
func (s *EventService) WentToEventTypeDuringWeekOf(ctx context.Context, id uint, member, eventType string) (went bool, ok bool, err error) {
	event, err := s.Load(ctx, id)
	if err != nil {
		return false, false, err
	}

	semesterEvents, err := s.attendance.FindEventAttendanceForMember(ctx, member, event.Event.Semester)
	if err != nil {
		return false, false, fmt.Errorf("s.attendance.FindEventAttendanceForMember -> %w", err)
	}

	absences, err := s.attendance.FindAbsenceRequestsForMember(ctx, member, event.Event.Semester)
	if err != nil {
		return false, false, fmt.Errorf("s.attendance.FindAbsenceRequestsForMember -> %w", err)
	}

	went, ok = event.Event.WentToEventTypeDuringWeekOf(semesterEvents, absences, eventType, s.now())
	return went, ok, nil
}

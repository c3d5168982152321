package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gleeclub/grease-api/internal/domain"
)

type GigRequestRepository interface {
	Create(ctx context.Context, request domain.GigRequest) (domain.GigRequest, error)
	FindByID(ctx context.Context, id uint) (domain.GigRequest, error)
	FindAll(ctx context.Context) ([]domain.GigRequest, error)
	FindSinceOrPending(ctx context.Context, since time.Time) ([]domain.GigRequest, error)
	UpdateStatus(ctx context.Context, id uint, status domain.GigRequestStatus) error
}

type EventCreator interface {
	Create(ctx context.Context, newEvent domain.NewEvent, origin *GigOrigin) (uint, error)
}

type GigRequestService struct {
	repo      GigRequestRepository
	events    EventCreator
	semesters CurrentSemester
	now       func() time.Time
}

func NewGigRequestService(repo GigRequestRepository, events EventCreator, semesters CurrentSemester) *GigRequestService {
	return &GigRequestService{
		repo:      repo,
		events:    events,
		semesters: semesters,
		now:       time.Now,
	}
}

// Submit stores a request from the public form as pending.
func (s *GigRequestService) Submit(ctx context.Context, newRequest domain.NewGigRequest) (domain.GigRequest, error) {
	created, err := s.repo.Create(ctx, domain.GigRequest{
		Time:         s.now(),
		Name:         newRequest.Name,
		Organization: newRequest.Organization,
		ContactName:  newRequest.ContactName,
		ContactEmail: newRequest.ContactEmail,
		ContactPhone: newRequest.ContactPhone,
		StartTime:    newRequest.StartTime,
		Location:     newRequest.Location,
		Comments:     newRequest.Comments,
		Status:       domain.GigRequestPending,
	})
	if err != nil {
		return domain.GigRequest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("gig request submitted",
		zap.Uint("gigRequestID", created.ID),
		zap.String("organization", created.Organization))

	return created, nil
}

func (s *GigRequestService) Load(ctx context.Context, id uint) (domain.GigRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.GigRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return request, nil
}

func (s *GigRequestService) LoadAll(ctx context.Context) ([]domain.GigRequest, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return requests, nil
}

// LoadAllForSemesterAndPending returns the requests submitted since the start
// of the current semester along with any older ones still pending.
func (s *GigRequestService) LoadAllForSemesterAndPending(ctx context.Context) ([]domain.GigRequest, error) {
	semester, err := s.semesters.CurrentOrLoadCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.semesters.CurrentOrLoadCurrent -> %w", err)
	}

	requests, err := s.repo.FindSinceOrPending(ctx, semester.StartDate)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSinceOrPending -> %w", err)
	}

	return requests, nil
}

// SetStatus moves the request to status. Identity transitions succeed
// without writing.
func (s *GigRequestService) SetStatus(ctx context.Context, id uint, status domain.GigRequestStatus) error {
	request, err := s.Load(ctx, id)
	if err != nil {
		return err
	}

	changed, err := request.Transition(status)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	zap.L().Info("gig request status changed",
		zap.Uint("gigRequestID", id),
		zap.String("from", string(request.Status)),
		zap.String("to", string(status)))

	return nil
}

// CreateEventForRequest accepts a pending request by creating its event. The
// event store links the request to the last created occurrence and marks it
// accepted in the same transaction, and that occurrence's id is returned.
func (s *GigRequestService) CreateEventForRequest(
	ctx context.Context,
	id uint,
	newEvent domain.NewEvent,
	newGig domain.NewGig,
) (uint, error) {
	request, err := s.Load(ctx, id)
	if err != nil {
		return 0, err
	}

	if err = request.ReadyForEvent(); err != nil {
		return 0, err
	}

	eventID, err := s.events.Create(ctx, newEvent, &GigOrigin{RequestID: request.ID, Gig: newGig})
	if err != nil {
		return 0, fmt.Errorf("s.events.Create -> %w", err)
	}

	return eventID, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

type EventDAO interface {
	FindByID(ctx context.Context, id uint) (dao.EventWithGigRow, error)
	FindAll(ctx context.Context) ([]dao.EventWithGigRow, error)
	FindBySemester(ctx context.Context, semester string) ([]dao.EventWithGigRow, error)
	FindBySemesterAndType(ctx context.Context, semester, eventType string) ([]dao.EventWithGigRow, error)
	FindOfTypeSpanning(ctx context.Context, semester, eventType string, start, end time.Time) ([]dao.Event, error)
	InsertOccurrences(ctx context.Context, events []dao.Event, gig *dao.Gig, gigRequestID *uint) ([]uint, error)
	Update(ctx context.Context, event dao.Event, gig *dao.Gig, insertGig bool) error
	Delete(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.EventWithGig, error) {
	row, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.EventWithGig{}, fmt.Errorf("r.dao.FindByID -> %w", translate(err, id))
	}

	return rowToDomain(row), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.EventWithGig, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return rowsToDomain(rows), nil
}

func (r *EventRepository) FindBySemester(ctx context.Context, semester string) ([]domain.EventWithGig, error) {
	rows, err := r.dao.FindBySemester(ctx, semester)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySemester -> %w", err)
	}

	return rowsToDomain(rows), nil
}

func (r *EventRepository) FindBySemesterAndType(ctx context.Context, semester, eventType string) ([]domain.EventWithGig, error) {
	rows, err := r.dao.FindBySemesterAndType(ctx, semester, eventType)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySemesterAndType -> %w", err)
	}

	return rowsToDomain(rows), nil
}

func (r *EventRepository) FindOfTypeSpanning(ctx context.Context, semester, eventType string, start, end time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindOfTypeSpanning(ctx, semester, eventType, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOfTypeSpanning -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = eventDaoToDomain(e)
	}
	return events, nil
}

func (r *EventRepository) CreateOccurrences(ctx context.Context, events []domain.Event, gig *domain.NewGig, gigRequestID *uint) ([]uint, error) {
	daoEvents := make([]dao.Event, len(events))
	for i, e := range events {
		daoEvents[i] = eventDomainToDao(e)
	}

	var daoGig *dao.Gig
	if gig != nil {
		g := gigDomainToDao(gig.ForEvent(0))
		daoGig = &g
	}

	ids, err := r.dao.InsertOccurrences(ctx, daoEvents, daoGig, gigRequestID)
	if err != nil {
		var key any
		if gigRequestID != nil {
			key = *gigRequestID
		}
		return nil, fmt.Errorf("r.dao.InsertOccurrences -> %w", translate(err, key))
	}

	return ids, nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event, gig *domain.Gig, insertGig bool) error {
	var daoGig *dao.Gig
	if gig != nil {
		g := gigDomainToDao(*gig)
		daoGig = &g
	}

	if err := r.dao.Update(ctx, eventDomainToDao(event), daoGig, insertGig); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", translate(err, event.ID))
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", translate(err, id))
	}

	return nil
}

func rowsToDomain(rows []dao.EventWithGigRow) []domain.EventWithGig {
	events := make([]domain.EventWithGig, len(rows))
	for i, row := range rows {
		events[i] = rowToDomain(row)
	}
	return events
}

// rowToDomain decides once whether the joined row carries a gig. A gig needs
// its event id, performance time, uniform and public flag; a row with only
// some of them is logged and presented as a plain event.
func rowToDomain(row dao.EventWithGigRow) domain.EventWithGig {
	composed := domain.EventWithGig{
		Event: domain.Event{
			ID:            row.ID,
			Name:          row.Name,
			Semester:      row.Semester,
			Type:          row.Type,
			CallTime:      row.CallTime,
			ReleaseTime:   row.ReleaseTime,
			Points:        row.Points,
			Comments:      row.Comments,
			Location:      row.Location,
			GigCount:      row.GigCount,
			DefaultAttend: row.DefaultAttend,
			Section:       row.Section,
		},
	}

	complete := row.GigEventID != nil && row.PerformanceTime != nil && row.UniformID != nil && row.Public != nil
	if !complete {
		if row.GigEventID != nil || row.PerformanceTime != nil || row.UniformID != nil || row.Public != nil {
			zap.L().Warn("event has an incomplete gig row, presenting it as a plain event",
				zap.Uint("eventID", row.ID))
		}
		return composed
	}

	composed.Gig = &domain.Gig{
		EventID:         *row.GigEventID,
		PerformanceTime: *row.PerformanceTime,
		UniformID:       *row.UniformID,
		ContactName:     row.ContactName,
		ContactEmail:    row.ContactEmail,
		ContactPhone:    row.ContactPhone,
		Price:           row.Price,
		Public:          *row.Public,
		Summary:         row.Summary,
		Description:     row.Description,
	}
	return composed
}

func eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:            e.ID,
		Name:          e.Name,
		Semester:      e.Semester,
		Type:          e.Type,
		CallTime:      e.CallTime,
		ReleaseTime:   e.ReleaseTime,
		Points:        e.Points,
		Comments:      e.Comments,
		Location:      e.Location,
		GigCount:      e.GigCount,
		DefaultAttend: e.DefaultAttend,
		Section:       e.Section,
	}
}

func eventDomainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:            e.ID,
		Name:          e.Name,
		Semester:      e.Semester,
		Type:          e.Type,
		CallTime:      e.CallTime,
		ReleaseTime:   e.ReleaseTime,
		Points:        e.Points,
		Comments:      e.Comments,
		Location:      e.Location,
		GigCount:      e.GigCount,
		DefaultAttend: e.DefaultAttend,
		Section:       e.Section,
	}
}

func gigDomainToDao(g domain.Gig) dao.Gig {
	return dao.Gig{
		EventID:         g.EventID,
		PerformanceTime: g.PerformanceTime,
		UniformID:       g.UniformID,
		ContactName:     g.ContactName,
		ContactEmail:    g.ContactEmail,
		ContactPhone:    g.ContactPhone,
		Price:           g.Price,
		Public:          g.Public,
		Summary:         g.Summary,
		Description:     g.Description,
	}
}

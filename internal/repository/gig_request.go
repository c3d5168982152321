package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

type GigRequestDAO interface {
	Insert(ctx context.Context, request dao.GigRequest) (dao.GigRequest, error)
	FindByID(ctx context.Context, id uint) (dao.GigRequest, error)
	FindAll(ctx context.Context) ([]dao.GigRequest, error)
	FindSinceOrPending(ctx context.Context, since time.Time) ([]dao.GigRequest, error)
	UpdateStatus(ctx context.Context, id uint, status dao.GigRequestStatus) error
}

type GigRequestRepository struct {
	dao GigRequestDAO
}

func NewGigRequestRepository(dao GigRequestDAO) *GigRequestRepository {
	return &GigRequestRepository{
		dao: dao,
	}
}

func (r *GigRequestRepository) Create(ctx context.Context, request domain.GigRequest) (domain.GigRequest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(request))
	if err != nil {
		return domain.GigRequest{}, fmt.Errorf("r.dao.Insert -> %w", translate(err, nil))
	}

	return r.daoToDomain(created), nil
}

func (r *GigRequestRepository) FindByID(ctx context.Context, id uint) (domain.GigRequest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.GigRequest{}, fmt.Errorf("r.dao.FindByID -> %w", translate(err, id))
	}

	return r.daoToDomain(found), nil
}

func (r *GigRequestRepository) FindAll(ctx context.Context) ([]domain.GigRequest, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *GigRequestRepository) FindSinceOrPending(ctx context.Context, since time.Time) ([]domain.GigRequest, error) {
	found, err := r.dao.FindSinceOrPending(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSinceOrPending -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *GigRequestRepository) UpdateStatus(ctx context.Context, id uint, status domain.GigRequestStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, dao.GigRequestStatus(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", translate(err, id))
	}

	return nil
}

func (r *GigRequestRepository) daosToDomain(requests []dao.GigRequest) []domain.GigRequest {
	result := make([]domain.GigRequest, len(requests))
	for i, request := range requests {
		result[i] = r.daoToDomain(request)
	}
	return result
}

func (r *GigRequestRepository) daoToDomain(g dao.GigRequest) domain.GigRequest {
	return domain.GigRequest{
		ID:           g.ID,
		Time:         g.Time,
		Name:         g.Name,
		Organization: g.Organization,
		EventID:      g.EventID,
		ContactName:  g.ContactName,
		ContactEmail: g.ContactEmail,
		ContactPhone: g.ContactPhone,
		StartTime:    g.StartTime,
		Location:     g.Location,
		Comments:     g.Comments,
		Status:       domain.GigRequestStatus(g.Status),
	}
}

func (r *GigRequestRepository) domainToDao(g domain.GigRequest) dao.GigRequest {
	return dao.GigRequest{
		ID:           g.ID,
		Time:         g.Time,
		Name:         g.Name,
		Organization: g.Organization,
		EventID:      g.EventID,
		ContactName:  g.ContactName,
		ContactEmail: g.ContactEmail,
		ContactPhone: g.ContactPhone,
		StartTime:    g.StartTime,
		Location:     g.Location,
		Comments:     g.Comments,
		Status:       dao.GigRequestStatus(g.Status),
	}
}

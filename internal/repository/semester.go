package repository

import (
	"context"
	"fmt"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

type SemesterDAO interface {
	FindCurrent(ctx context.Context) (dao.Semester, error)
}

type SemesterRepository struct {
	dao SemesterDAO
}

func NewSemesterRepository(dao SemesterDAO) *SemesterRepository {
	return &SemesterRepository{
		dao: dao,
	}
}

func (r *SemesterRepository) FindCurrent(ctx context.Context) (domain.Semester, error) {
	found, err := r.dao.FindCurrent(ctx)
	if err != nil {
		return domain.Semester{}, fmt.Errorf("r.dao.FindCurrent -> %w", err)
	}

	return domain.Semester{
		Name:           found.Name,
		StartDate:      found.StartDate,
		EndDate:        found.EndDate,
		GigRequirement: found.GigRequirement,
		Current:        found.IsCurrent,
	}, nil
}

type UniformDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Uniform, error)
}

type UniformRepository struct {
	dao UniformDAO
}

func NewUniformRepository(dao UniformDAO) *UniformRepository {
	return &UniformRepository{
		dao: dao,
	}
}

func (r *UniformRepository) FindByID(ctx context.Context, id uint) (domain.Uniform, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Uniform{}, fmt.Errorf("r.dao.FindByID -> %w", translate(err, id))
	}

	return domain.Uniform{
		ID:          found.ID,
		Name:        found.Name,
		Color:       found.Color,
		Description: found.Description,
	}, nil
}

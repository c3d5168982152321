package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository"
)

type SemesterRepository interface {
	FindCurrent(ctx context.Context) (domain.Semester, error)
}

type semesterKey struct{}

// WithCurrentSemester stores semester in ctx so that later lookups in the
// same request skip the database.
func WithCurrentSemester(ctx context.Context, semester domain.Semester) context.Context {
	return context.WithValue(ctx, semesterKey{}, semester)
}

type SemesterService struct {
	repo SemesterRepository
}

func NewSemesterService(repo SemesterRepository) *SemesterService {
	return &SemesterService{
		repo: repo,
	}
}

// CurrentOrLoadCurrent returns the semester already resolved for this
// request, or loads the one marked current.
func (s *SemesterService) CurrentOrLoadCurrent(ctx context.Context) (domain.Semester, error) {
	if semester, ok := ctx.Value(semesterKey{}).(domain.Semester); ok {
		return semester, nil
	}

	semester, err := s.repo.FindCurrent(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoCurrentSemester) {
			return domain.Semester{}, fmt.Errorf("%w: there is currently no current semester set", domain.ErrServer)
		}

		return domain.Semester{}, fmt.Errorf("s.repo.FindCurrent -> %w", err)
	}

	return semester, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

type MemberDAO interface {
	FindByEmail(ctx context.Context, email string) (dao.Member, error)
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (domain.Member, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByEmail -> %w", translate(err, email))
	}

	return domain.Member{
		Email:     found.Email,
		FirstName: found.FirstName,
		LastName:  found.LastName,
	}, nil
}

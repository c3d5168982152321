package service

import (
	"context"
	"fmt"

	"github.com/gleeclub/grease-api/internal/domain"
)

type MemberRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Member, error)
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

// GetMember loads the member with email and grants it permissions.
func (s *MemberService) GetMember(ctx context.Context, email string, permissions []string) (domain.Member, error) {
	member, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}
	member.Permissions = permissions

	return member, nil
}

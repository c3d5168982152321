package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository"
)

func TestSemesterService_CurrentOrLoadCurrent(t *testing.T) {
	fall := domain.Semester{Name: "Fall 2026", StartDate: at(1, 0), Current: true}

	t.Run("loads from the repository", func(t *testing.T) {
		repo := &stubSemesters{semester: fall}
		svc := NewSemesterService(repo)

		semester, err := svc.CurrentOrLoadCurrent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Fall 2026", semester.Name)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("uses the request's semester", func(t *testing.T) {
		repo := &stubSemesters{semester: fall}
		svc := NewSemesterService(repo)

		ctx := WithCurrentSemester(context.Background(), domain.Semester{Name: "Spring 2026"})
		semester, err := svc.CurrentOrLoadCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Spring 2026", semester.Name)
		assert.Zero(t, repo.calls)
	})

	t.Run("no current semester", func(t *testing.T) {
		svc := NewSemesterService(&stubSemesters{err: repository.ErrNoCurrentSemester})

		_, err := svc.CurrentOrLoadCurrent(context.Background())
		assert.ErrorIs(t, err, domain.ErrServer)
		assert.ErrorContains(t, err, "there is currently no current semester set")
	})

	t.Run("database failure", func(t *testing.T) {
		svc := NewSemesterService(&stubSemesters{err: errors.New("connection refused")})

		_, err := svc.CurrentOrLoadCurrent(context.Background())
		assert.NotErrorIs(t, err, domain.ErrServer)
		assert.ErrorContains(t, err, "connection refused")
	})
}

type stubMembers struct {
	members map[string]domain.Member
}

func (s stubMembers) FindByEmail(ctx context.Context, email string) (domain.Member, error) {
	m, ok := s.members[email]
	if !ok {
		return domain.Member{}, &domain.NotFoundError{Resource: "member", ID: email}
	}
	return m, nil
}

func TestMemberService_GetMember(t *testing.T) {
	svc := NewMemberService(stubMembers{members: map[string]domain.Member{
		"alto@example.com": {Email: "alto@example.com", FirstName: "Ada"},
	}})

	member, err := svc.GetMember(context.Background(), "alto@example.com", []string{domain.PermissionCreateEvent})
	require.NoError(t, err)
	assert.Equal(t, "Ada", member.FirstName)
	assert.True(t, member.Can(domain.PermissionCreateEvent))

	_, err = svc.GetMember(context.Background(), "nobody@example.com", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

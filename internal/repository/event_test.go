package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRowToDomain(t *testing.T) {
	call := time.Date(2026, time.September, 6, 18, 0, 0, 0, time.UTC)
	base := dao.EventWithGigRow{
		ID:       7,
		Name:     "Anthem",
		Semester: "Fall 2026",
		Type:     "tutti gig",
		CallTime: call,
		Points:   35,
		GigCount: true,
	}

	t.Run("plain event", func(t *testing.T) {
		got := rowToDomain(base)
		assert.False(t, got.IsGig())
		assert.Equal(t, uint(7), got.Event.ID)
		assert.Equal(t, "Anthem", got.Event.Name)
	})

	t.Run("gig event", func(t *testing.T) {
		row := base
		row.GigEventID = ptr(uint(7))
		row.PerformanceTime = ptr(call.Add(time.Hour))
		row.UniformID = ptr(uint(2))
		row.Public = ptr(true)
		row.Price = ptr(250)

		got := rowToDomain(row)
		require.True(t, got.IsGig())
		assert.Equal(t, uint(2), got.Gig.UniformID)
		assert.True(t, got.Gig.Public)
		assert.Equal(t, 250, *got.Gig.Price)
		assert.Equal(t, call.Add(time.Hour), got.Gig.PerformanceTime)
	})

	t.Run("incomplete gig columns present as plain event", func(t *testing.T) {
		row := base
		row.GigEventID = ptr(uint(7))
		row.PerformanceTime = ptr(call)
		row.UniformID = ptr(uint(2))

		assert.False(t, rowToDomain(row).IsGig())
	})
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		msg    string
	}{
		{name: "event", err: dao.ErrEventNotFound, target: domain.ErrNotFound, msg: "no event with id 3"},
		{name: "gig request", err: fmt.Errorf("wrapped -> %w", dao.ErrGigRequestNotFound), target: domain.ErrNotFound, msg: "no gig request with id 3"},
		{name: "uniform", err: dao.ErrUniformNotFound, target: domain.ErrNotFound, msg: "no uniform with id 3"},
		{name: "constraint", err: fmt.Errorf("%w: bad semester", dao.ErrConstraintViolation), target: domain.ErrValidation, msg: "bad semester"},
		{name: "no longer pending", err: dao.ErrGigRequestNotPending, target: domain.ErrValidation, msg: "gig request 3, it is no longer pending"},
		{name: "no id", err: dao.ErrNoEventCreated, target: domain.ErrServer, msg: "error inserting new event"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := translate(tc.err, 3)
			assert.ErrorIs(t, err, tc.target)
			assert.ErrorContains(t, err, tc.msg)
		})
	}

	assert.NoError(t, translate(nil, 3))

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other, 3))
}

type stubEventDAO struct {
	EventDAO

	events       []dao.Event
	gig          *dao.Gig
	gigRequestID *uint
	err          error
}

func (s *stubEventDAO) InsertOccurrences(ctx context.Context, events []dao.Event, gig *dao.Gig, gigRequestID *uint) ([]uint, error) {
	s.events = events
	s.gig = gig
	s.gigRequestID = gigRequestID
	if s.err != nil {
		return nil, s.err
	}

	ids := make([]uint, len(events))
	for i := range events {
		ids[i] = uint(100 + i)
	}
	return ids, nil
}

func TestEventRepository_CreateOccurrences(t *testing.T) {
	ctx := context.Background()
	call := time.Date(2026, time.September, 6, 18, 0, 0, 0, time.UTC)

	t.Run("maps events and gig", func(t *testing.T) {
		stub := &stubEventDAO{}
		repo := NewEventRepository(stub)

		ids, err := repo.CreateOccurrences(ctx,
			[]domain.Event{{Name: "Anthem", CallTime: call}, {Name: "Anthem", CallTime: call.AddDate(0, 0, 7)}},
			&domain.NewGig{PerformanceTime: call, UniformID: 2, Public: true},
			ptr(uint(12)))
		require.NoError(t, err)
		assert.Equal(t, []uint{100, 101}, ids)
		require.Len(t, stub.events, 2)
		assert.Equal(t, call.AddDate(0, 0, 7), stub.events[1].CallTime)
		require.NotNil(t, stub.gig)
		assert.Equal(t, uint(2), stub.gig.UniformID)
		assert.True(t, stub.gig.Public)
		assert.Equal(t, uint(12), *stub.gigRequestID)
	})

	t.Run("reports the gig request id", func(t *testing.T) {
		repo := NewEventRepository(&stubEventDAO{err: dao.ErrGigRequestNotFound})

		_, err := repo.CreateOccurrences(ctx, []domain.Event{{Name: "Anthem", CallTime: call}}, nil, ptr(uint(12)))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorContains(t, err, "no gig request with id 12")
	})
}

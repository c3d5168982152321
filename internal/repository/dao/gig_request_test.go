package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDAOGigRequest(name string, day int, status GigRequestStatus) GigRequest {
	return GigRequest{
		Time:         at(day, 9),
		Name:         name,
		Organization: "Tech Alumni",
		ContactName:  "Pat",
		ContactPhone: "4045550199",
		ContactEmail: "pat@example.com",
		StartTime:    at(day+14, 18),
		Location:     "Campanile",
		Status:       status,
	}
}

func TestGigRequestDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewGigRequestDAO(db)

	old := newDAOGigRequest("Old but pending", 1, GigRequestPending)
	old.Time = old.Time.AddDate(-1, 0, 0)
	stale := newDAOGigRequest("Old and dismissed", 2, GigRequestDismissed)
	stale.Time = stale.Time.AddDate(-1, 0, 0)
	recent := newDAOGigRequest("Recent", 3, GigRequestDismissed)

	for _, r := range []GigRequest{old, stale, recent} {
		_, err := d.Insert(ctx, r)
		require.NoError(t, err)
	}

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Recent", all[0].Name)

	current, err := d.FindSinceOrPending(ctx, at(1, 0))
	require.NoError(t, err)
	require.Len(t, current, 2)
	assert.Equal(t, "Recent", current[0].Name)
	assert.Equal(t, "Old but pending", current[1].Name)

	found, err := d.FindByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Recent", found.Name)

	require.NoError(t, d.UpdateStatus(ctx, found.ID, GigRequestPending))
	found, err = d.FindByID(ctx, found.ID)
	require.NoError(t, err)
	assert.Equal(t, GigRequestPending, found.Status)

	_, err = d.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrGigRequestNotFound)
	assert.ErrorIs(t, d.UpdateStatus(ctx, 9999, GigRequestDismissed), ErrGigRequestNotFound)
}

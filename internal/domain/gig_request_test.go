package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGigRequestTransition(t *testing.T) {
	eventID := uint(12)

	tests := []struct {
		name        string
		from        GigRequestStatus
		to          GigRequestStatus
		eventID     *uint
		wantChanged bool
		wantErr     string
	}{
		{name: "pending to pending", from: GigRequestPending, to: GigRequestPending},
		{name: "dismissed to dismissed", from: GigRequestDismissed, to: GigRequestDismissed},
		{name: "accepted to accepted", from: GigRequestAccepted, to: GigRequestAccepted, eventID: &eventID},
		{name: "accepted to dismissed", from: GigRequestAccepted, to: GigRequestDismissed, eventID: &eventID, wantErr: "accepted gig request"},
		{name: "accepted to pending", from: GigRequestAccepted, to: GigRequestPending, eventID: &eventID, wantErr: "accepted gig request"},
		{name: "dismissed to accepted", from: GigRequestDismissed, to: GigRequestAccepted, eventID: &eventID, wantErr: "reopen it first"},
		{name: "pending to accepted without event", from: GigRequestPending, to: GigRequestAccepted, wantErr: "create the event"},
		{name: "pending to accepted with event", from: GigRequestPending, to: GigRequestAccepted, eventID: &eventID, wantChanged: true},
		{name: "pending to dismissed", from: GigRequestPending, to: GigRequestDismissed, wantChanged: true},
		{name: "dismissed to pending", from: GigRequestDismissed, to: GigRequestPending, wantChanged: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := GigRequest{ID: 1, Status: tc.from, EventID: tc.eventID}

			changed, err := req.Transition(tc.to)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.False(t, changed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)
		})
	}
}

func TestParseGigRequestStatus(t *testing.T) {
	status, err := ParseGigRequestStatus("dismissed")
	require.NoError(t, err)
	assert.Equal(t, GigRequestDismissed, status)

	_, err = ParseGigRequestStatus("maybe")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGigRequestReadyForEvent(t *testing.T) {
	assert.NoError(t, GigRequest{Status: GigRequestPending}.ReadyForEvent())

	err := GigRequest{Status: GigRequestAccepted}.ReadyForEvent()
	assert.ErrorIs(t, err, ErrValidation)

	err = GigRequest{Status: GigRequestDismissed}.ReadyForEvent()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "reopen")
}

package domain

import "time"

type GigRequestStatus string

const (
	GigRequestPending   GigRequestStatus = "pending"
	GigRequestAccepted  GigRequestStatus = "accepted"
	GigRequestDismissed GigRequestStatus = "dismissed"
)

func ParseGigRequestStatus(s string) (GigRequestStatus, error) {
	switch status := GigRequestStatus(s); status {
	case GigRequestPending, GigRequestAccepted, GigRequestDismissed:
		return status, nil
	default:
		return "", NewValidationError("The gig request status '%s' is not allowed. The only allowed values are 'pending', 'accepted', or 'dismissed'.", s)
	}
}

type GigRequest struct {
	ID           uint             `json:"id"`
	Time         time.Time        `json:"time"`
	Name         string           `json:"name"`
	Organization string           `json:"organization"`
	EventID      *uint            `json:"event"`
	ContactName  string           `json:"contact_name"`
	ContactEmail string           `json:"contact_email"`
	ContactPhone string           `json:"contact_phone"`
	StartTime    time.Time        `json:"start_time"`
	Location     string           `json:"location"`
	Comments     *string          `json:"comments"`
	Status       GigRequestStatus `json:"status"`
}

// Transition checks whether the request may move to status. It returns
// changed=false for identity transitions, which callers treat as a no-op.
func (r GigRequest) Transition(status GigRequestStatus) (changed bool, err error) {
	switch {
	case r.Status == status:
		return false, nil
	case r.Status == GigRequestAccepted:
		return false, NewValidationError("Cannot change the status of an accepted gig request.")
	case r.Status == GigRequestDismissed && status == GigRequestAccepted:
		return false, NewValidationError("Cannot directly accept a gig request if it is dismissed. Please reopen it first.")
	case r.Status == GigRequestPending && status == GigRequestAccepted && r.EventID == nil:
		return false, NewValidationError("Must create the event for the gig request first before marking it as accepted.")
	}

	return true, nil
}

// ReadyForEvent checks that an event may be created for the request, which
// accepts it. Only pending requests qualify.
func (r GigRequest) ReadyForEvent() error {
	switch r.Status {
	case GigRequestAccepted:
		return NewValidationError("Cannot create an event for a gig request that is already accepted.")
	case GigRequestDismissed:
		return NewValidationError("Cannot create an event for a dismissed gig request. Please reopen it first.")
	}

	return nil
}

// NewGigRequest is a submission from the public intake form.
type NewGigRequest struct {
	Name         string
	Organization string
	ContactName  string
	ContactEmail string
	ContactPhone string
	StartTime    time.Time
	Location     string
	Comments     *string
}

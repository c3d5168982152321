package domain

import "slices"

const (
	PermissionCreateEvent        = "create-event"
	PermissionModifyEvent        = "modify-event"
	PermissionDeleteEvent        = "delete-event"
	PermissionProcessGigRequests = "process-gig-requests"
)

// Member is the authenticated caller, as vouched for by the session token.
type Member struct {
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Permissions []string `json:"permissions"`
}

func (m Member) Can(permission string) bool {
	return slices.Contains(m.Permissions, permission)
}

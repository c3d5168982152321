package response

import (
	"time"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/service"
)

// EventResponse is an event with its gig fields flattened in. The gig fields
// are null for plain events.
type EventResponse struct {
	domain.Event

	PerformanceTime *time.Time `json:"performance_time"`
	Uniform         any        `json:"uniform"`
	ContactName     *string    `json:"contact_name"`
	ContactEmail    *string    `json:"contact_email"`
	ContactPhone    *string    `json:"contact_phone"`
	Price           *int       `json:"price"`
	Public          *bool      `json:"public"`
	Summary         *string    `json:"summary"`
	Description     *string    `json:"description"`
}

// FullEventResponse replaces the uniform id with the uniform itself and adds
// the caller's attendance.
type FullEventResponse struct {
	EventResponse
	Attendance *domain.Attendance `json:"attendance"`
}

func NewEventResponse(event domain.EventWithGig) EventResponse {
	resp := EventResponse{Event: event.Event}
	if gig := event.Gig; gig != nil {
		resp.PerformanceTime = &gig.PerformanceTime
		resp.Uniform = gig.UniformID
		resp.ContactName = gig.ContactName
		resp.ContactEmail = gig.ContactEmail
		resp.ContactPhone = gig.ContactPhone
		resp.Price = gig.Price
		resp.Public = &gig.Public
		resp.Summary = gig.Summary
		resp.Description = gig.Description
	}
	return resp
}

func NewEventResponses(events []domain.EventWithGig) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i, event := range events {
		resp[i] = NewEventResponse(event)
	}
	return resp
}

func NewFullEventResponse(full service.FullEvent) FullEventResponse {
	resp := FullEventResponse{
		EventResponse: NewEventResponse(full.EventWithGig),
		Attendance:    full.Attendance,
	}
	if full.Uniform != nil {
		resp.Uniform = full.Uniform
	}
	return resp
}

type CreatedResponse struct {
	ID uint `json:"id"`
}

type WentToResponse struct {
	// WentTo is null when no event of the type has finished that week.
	WentTo *bool `json:"went_to"`
}

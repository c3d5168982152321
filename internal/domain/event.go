package domain

import "time"

type Event struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Semester      string     `json:"semester"`
	Type          string     `json:"type"`
	CallTime      time.Time  `json:"call_time"`
	ReleaseTime   *time.Time `json:"release_time"`
	Points        int        `json:"points"`
	Comments      *string    `json:"comments"`
	Location      *string    `json:"location"`
	GigCount      bool       `json:"gig_count"`
	DefaultAttend bool       `json:"default_attend"`
	Section       *string    `json:"section"`
}

// End is the release time, or the call time when no release time is set.
func (e Event) End() time.Time {
	if e.ReleaseTime != nil {
		return *e.ReleaseTime
	}
	return e.CallTime
}

func (e Event) Minimal() map[string]any {
	return map[string]any{
		"id":   e.ID,
		"name": e.Name,
	}
}

// WeekOf returns the window from the last Sunday at or before the call time
// to seven days after it, in local time. Time of day is kept from the call
// time.
func (e Event) WeekOf() (time.Time, time.Time) {
	callTime := e.CallTime.In(time.Local)
	start := callTime.AddDate(0, 0, -int(callTime.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

type Gig struct {
	EventID         uint      `json:"event"`
	PerformanceTime time.Time `json:"performance_time"`
	UniformID       uint      `json:"uniform"`
	ContactName     *string   `json:"contact_name"`
	ContactEmail    *string   `json:"contact_email"`
	ContactPhone    *string   `json:"contact_phone"`
	Price           *int      `json:"price"`
	Public          bool      `json:"public"`
	Summary         *string   `json:"summary"`
	Description     *string   `json:"description"`
}

// EventWithGig is the composed view of an event. Gig is nil for plain events.
type EventWithGig struct {
	Event Event
	Gig   *Gig
}

func (e EventWithGig) IsGig() bool {
	return e.Gig != nil
}

// NewEvent is a creation request. Repeat is one of the calendar period names
// or "no"; RepeatUntil is required when Repeat is not "no".
type NewEvent struct {
	Name          string
	Semester      string
	Type          string
	CallTime      time.Time
	ReleaseTime   *time.Time
	Points        int
	Comments      *string
	Location      *string
	GigCount      bool
	DefaultAttend bool
	Section       *string
	Repeat        string
	RepeatUntil   *time.Time
}

// Occurrence builds the event row for one expanded occurrence.
func (n NewEvent) Occurrence(callTime time.Time, releaseTime *time.Time) Event {
	return Event{
		Name:          n.Name,
		Semester:      n.Semester,
		Type:          n.Type,
		CallTime:      callTime,
		ReleaseTime:   releaseTime,
		Points:        n.Points,
		Comments:      n.Comments,
		Location:      n.Location,
		GigCount:      n.GigCount,
		DefaultAttend: n.DefaultAttend,
		Section:       n.Section,
	}
}

type NewGig struct {
	PerformanceTime time.Time
	UniformID       uint
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Price           *int
	Public          bool
	Summary         *string
	Description     *string
}

func (g NewGig) ForEvent(eventID uint) Gig {
	return Gig{
		EventID:         eventID,
		PerformanceTime: g.PerformanceTime,
		UniformID:       g.UniformID,
		ContactName:     g.ContactName,
		ContactEmail:    g.ContactEmail,
		ContactPhone:    g.ContactPhone,
		Price:           g.Price,
		Public:          g.Public,
		Summary:         g.Summary,
		Description:     g.Description,
	}
}

// EventUpdate replaces every scalar field of an event. The gig fields are
// optional; supplying any of them on a plain event promotes it to a gig.
type EventUpdate struct {
	Name          string
	Semester      string
	Type          string
	CallTime      time.Time
	ReleaseTime   *time.Time
	Points        int
	Comments      *string
	Location      *string
	GigCount      bool
	DefaultAttend bool
	Section       *string

	PerformanceTime *time.Time
	UniformID       *uint
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Price           *int
	Public          *bool
	Summary         *string
	Description     *string
}

func (u EventUpdate) HasGigFields() bool {
	return u.PerformanceTime != nil ||
		u.UniformID != nil ||
		u.ContactName != nil ||
		u.ContactEmail != nil ||
		u.ContactPhone != nil ||
		u.Price != nil ||
		u.Public != nil ||
		u.Summary != nil ||
		u.Description != nil
}

// Gig builds the gig row for eventID from the update. Performance time and
// uniform are required; public defaults to false when absent.
func (u EventUpdate) Gig(eventID uint) (Gig, error) {
	if u.PerformanceTime == nil {
		return Gig{}, NewValidationError("Performance time is required on events that are gigs.")
	}
	if u.UniformID == nil {
		return Gig{}, NewValidationError("Uniform is required on events that are gigs.")
	}

	public := false
	if u.Public != nil {
		public = *u.Public
	}

	return Gig{
		EventID:         eventID,
		PerformanceTime: *u.PerformanceTime,
		UniformID:       *u.UniformID,
		ContactName:     u.ContactName,
		ContactEmail:    u.ContactEmail,
		ContactPhone:    u.ContactPhone,
		Price:           u.Price,
		Public:          public,
		Summary:         u.Summary,
		Description:     u.Description,
	}, nil
}

func (u EventUpdate) Event(eventID uint) Event {
	return Event{
		ID:            eventID,
		Name:          u.Name,
		Semester:      u.Semester,
		Type:          u.Type,
		CallTime:      u.CallTime,
		ReleaseTime:   u.ReleaseTime,
		Points:        u.Points,
		Comments:      u.Comments,
		Location:      u.Location,
		GigCount:      u.GigCount,
		DefaultAttend: u.DefaultAttend,
		Section:       u.Section,
	}
}

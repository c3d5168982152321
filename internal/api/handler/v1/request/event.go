package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/pkg/calendar"
)

var errMissingRepeatUntil = errors.New("repeat_until is required when repeat is not 'no'")

// EventFields are the columns shared by event creation and update.
type EventFields struct {
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

func (f *EventFields) rules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&f.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&f.Semester, validation.Required, validation.Length(1, 32)),
		validation.Field(&f.Type, validation.Required, validation.Length(1, 32)),
		validation.Field(&f.CallTime, validation.Required),
		validation.Field(&f.Points, validation.Min(0)),
		validation.Field(&f.Location, validation.NilOrNotEmpty, validation.Length(0, 255)),
		validation.Field(&f.Section, validation.NilOrNotEmpty, validation.Length(0, 20)),
	}
}

type CreateEventRequest struct {
	EventFields
	Repeat      string     `json:"repeat"`
	RepeatUntil *time.Time `json:"repeat_until"`
}

func (req *CreateEventRequest) Validate() error {
	if req.Repeat == "" {
		req.Repeat = calendar.NoRepeat
	}

	rules := append(req.EventFields.rules(),
		validation.Field(&req.Repeat, validation.Required),
	)
	if err := validation.ValidateStruct(req, rules...); err != nil {
		return err
	}

	if req.Repeat != calendar.NoRepeat && req.RepeatUntil == nil {
		return errMissingRepeatUntil
	}

	return nil
}

func (req *CreateEventRequest) NewEvent() domain.NewEvent {
	return domain.NewEvent{
		Name:          req.Name,
		Semester:      req.Semester,
		Type:          req.Type,
		CallTime:      req.CallTime,
		ReleaseTime:   req.ReleaseTime,
		Points:        req.Points,
		Comments:      req.Comments,
		Location:      req.Location,
		GigCount:      req.GigCount,
		DefaultAttend: req.DefaultAttend,
		Section:       req.Section,
		Repeat:        req.Repeat,
		RepeatUntil:   req.RepeatUntil,
	}
}

type GigFields struct {
	PerformanceTime *time.Time `json:"performance_time"`
	Uniform         *uint      `json:"uniform"`
	ContactName     *string    `json:"contact_name"`
	ContactEmail    *string    `json:"contact_email"`
	ContactPhone    *string    `json:"contact_phone"`
	Price           *int       `json:"price"`
	Public          *bool      `json:"public"`
	Summary         *string    `json:"summary"`
	Description     *string    `json:"description"`
}

type UpdateEventRequest struct {
	EventFields
	GigFields
}

func (req *UpdateEventRequest) Validate() error {
	rules := append(req.EventFields.rules(),
		validation.Field(&req.ContactPhone, validation.NilOrNotEmpty, validation.By(phoneNumber)),
		validation.Field(&req.Price, validation.Min(0)),
	)

	return validation.ValidateStruct(req, rules...)
}

func (req *UpdateEventRequest) EventUpdate() domain.EventUpdate {
	return domain.EventUpdate{
		Name:            req.Name,
		Semester:        req.Semester,
		Type:            req.Type,
		CallTime:        req.CallTime,
		ReleaseTime:     req.ReleaseTime,
		Points:          req.Points,
		Comments:        req.Comments,
		Location:        req.Location,
		GigCount:        req.GigCount,
		DefaultAttend:   req.DefaultAttend,
		Section:         req.Section,
		PerformanceTime: req.PerformanceTime,
		UniformID:       req.Uniform,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Price:           req.Price,
		Public:          req.Public,
		Summary:         req.Summary,
		Description:     req.Description,
	}
}

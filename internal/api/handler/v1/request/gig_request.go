package request

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/gleeclub/grease-api/internal/domain"
)

// Ten to fifteen digits, with the usual separators allowed between them.
const phoneRegexPattern = `^(?=(?:\D*\d){10,15}\D*$)\+?[\d\s().-]+$`

var (
	phoneExp = regexp2.MustCompile(phoneRegexPattern, regexp2.None)

	errInvalidPhone     = errors.New("must be a phone number of 10 to 15 digits")
	errMissingGigFields = errors.New("performance_time and uniform are required to create a gig")
)

func phoneNumber(value interface{}) error {
	var phone string
	switch v := value.(type) {
	case string:
		phone = v
	case *string:
		if v == nil {
			return nil
		}
		phone = *v
	default:
		return errInvalidPhone
	}

	ok, err := phoneExp.MatchString(phone)
	if err != nil || !ok {
		return errInvalidPhone
	}
	return nil
}

type SubmitGigRequestRequest struct {
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	StartTime    time.Time `json:"start_time"`
	Location     string    `json:"location"`
	Comments     *string   `json:"comments"`
}

func (req *SubmitGigRequestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Organization, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.ContactName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.ContactEmail, validation.Required, is.Email, validation.Length(1, 50)),
		validation.Field(&req.ContactPhone, validation.Required, validation.By(phoneNumber)),
		validation.Field(&req.StartTime, validation.Required),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
	)
}

func (req *SubmitGigRequestRequest) NewGigRequest() domain.NewGigRequest {
	return domain.NewGigRequest{
		Name:         req.Name,
		Organization: req.Organization,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		StartTime:    req.StartTime,
		Location:     req.Location,
		Comments:     req.Comments,
	}
}

// CreateEventFromGigRequestRequest is the event to create for a gig request
// and the gig details every occurrence gets.
type CreateEventFromGigRequestRequest struct {
	Event CreateEventRequest `json:"event"`
	Gig   GigFields          `json:"gig"`
}

func (req *CreateEventFromGigRequestRequest) Validate() error {
	if err := req.Event.Validate(); err != nil {
		return err
	}

	if req.Gig.PerformanceTime == nil || req.Gig.Uniform == nil {
		return errMissingGigFields
	}

	return validation.ValidateStruct(
		&req.Gig,
		validation.Field(&req.Gig.ContactEmail, validation.NilOrNotEmpty, is.Email),
		validation.Field(&req.Gig.ContactPhone, validation.NilOrNotEmpty, validation.By(phoneNumber)),
		validation.Field(&req.Gig.Price, validation.Min(0)),
	)
}

func (req *CreateEventFromGigRequestRequest) NewGig() domain.NewGig {
	gig := domain.NewGig{
		PerformanceTime: *req.Gig.PerformanceTime,
		UniformID:       *req.Gig.Uniform,
		ContactName:     req.Gig.ContactName,
		ContactEmail:    req.Gig.ContactEmail,
		ContactPhone:    req.Gig.ContactPhone,
		Price:           req.Gig.Price,
		Summary:         req.Gig.Summary,
		Description:     req.Gig.Description,
	}
	if req.Gig.Public != nil {
		gig.Public = *req.Gig.Public
	}
	return gig
}

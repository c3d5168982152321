package repository

import (
	"errors"
	"fmt"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

var (
	ErrMemberEmailExists = dao.ErrMemberEmailExists
	ErrNoCurrentSemester = dao.ErrNoCurrentSemester
)

// translate maps dao errors onto the domain error taxonomy. id is the key
// that was looked up, reported back in not-found messages.
func translate(err error, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dao.ErrEventNotFound):
		return &domain.NotFoundError{Resource: "event", ID: id}
	case errors.Is(err, dao.ErrGigRequestNotFound):
		return &domain.NotFoundError{Resource: "gig request", ID: id}
	case errors.Is(err, dao.ErrUniformNotFound):
		return &domain.NotFoundError{Resource: "uniform", ID: id}
	case errors.Is(err, dao.ErrAttendanceNotFound):
		return &domain.NotFoundError{Resource: "attendance", ID: id}
	case errors.Is(err, dao.ErrMemberNotFound):
		return &domain.NotFoundError{Resource: "member", ID: id}
	case errors.Is(err, dao.ErrGigRequestNotPending):
		return domain.NewValidationError("Cannot create an event for gig request %v, it is no longer pending.", id)
	case errors.Is(err, dao.ErrConstraintViolation):
		return domain.NewValidationError("%s", err.Error())
	case errors.Is(err, dao.ErrNoEventCreated):
		return fmt.Errorf("%w: error inserting new event into database", domain.ErrServer)
	default:
		return err
	}
}

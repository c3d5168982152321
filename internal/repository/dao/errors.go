package dao

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrGigRequestNotFound   = errors.New("gig request not found")
	ErrGigRequestNotPending = errors.New("gig request is no longer pending")
	ErrAttendanceNotFound   = errors.New("attendance not found")
	ErrUniformNotFound      = errors.New("uniform not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrMemberEmailExists    = errors.New("member already exists")
	ErrNoCurrentSemester    = errors.New("no current semester")
	ErrNoEventCreated       = errors.New("no event was created")
	ErrConstraintViolation  = errors.New("constraint violation")
)

// mapWriteError turns Postgres integrity errors into ErrConstraintViolation
// so the caller can report them as bad input.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Detail)
	case pgerrcode.UniqueViolation, pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Message)
	default:
		return err
	}
}

package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gleeclub/grease-api/internal/domain"
)

type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status_text"`
	ErrorMsg       string `json:"error_message,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Int("status", err.HTTPStatusCode),
			zap.Error(err.Err))
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     http.StatusText(http.StatusBadRequest),
		ErrorMsg:       err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     http.StatusText(http.StatusUnauthorized),
		ErrorMsg:       err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		StatusText:     http.StatusText(http.StatusForbidden),
		ErrorMsg:       err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		Err:            fmt.Errorf("%s not found", resource),
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     http.StatusText(http.StatusNotFound),
		ErrorMsg:       fmt.Sprintf("%s with %s %v does not exist", resource, key, value),
	}
}

// ErrInternalServerError hides err from the client; it is only logged.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorMsg:       "something went wrong, please try again later",
	}
}

// FromError renders a service error by its kind. Validation failures and
// missing records keep their message; everything else is a server error.
func FromError(err error) *Err {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusBadRequest,
			StatusText:     http.StatusText(http.StatusBadRequest),
			ErrorMsg:       validationErr.Reason,
		}
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusNotFound,
			StatusText:     http.StatusText(http.StatusNotFound),
			ErrorMsg:       notFoundErr.Error(),
		}
	}

	return ErrInternalServerError(err)
}

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gleeclub/grease-api/internal/api/handler/v1/response"
	"github.com/gleeclub/grease-api/internal/api/middleware"
	"github.com/gleeclub/grease-api/internal/domain"
)

var errNoMemberInContext = errors.New("no authenticated member in context")

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getMemberFromContext(ctx *gin.Context) (domain.Member, *response.Err) {
	value, exists := ctx.Get(middleware.MemberKey)
	if !exists {
		return domain.Member{}, response.ErrUnauthorized(errNoMemberInContext)
	}

	member, ok := value.(domain.Member)
	if !ok {
		return domain.Member{}, response.ErrUnauthorized(errNoMemberInContext)
	}

	return member, nil
}

func parseID(ctx *gin.Context, param string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s: %s", param, ctx.Param(param)))
	}

	return uint(id), nil
}

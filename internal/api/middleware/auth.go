package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gleeclub/grease-api/internal/api/handler/v1/response"
	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/pkg/jwthelper"
)

// MemberKey is the gin context key holding the authenticated domain.Member.
const MemberKey = "member"

var errMissingToken = errors.New("missing bearer token")

type MemberLoader interface {
	GetMember(ctx context.Context, email string, permissions []string) (domain.Member, error)
}

type Authenticator struct {
	signingKey []byte
	members    MemberLoader
}

func NewAuthenticator(signingKey string, members MemberLoader) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		members:    members,
	}
}

// VerifyJWT checks the bearer token and stores its member in the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		member, err := a.members.GetMember(ctx.Request.Context(), claims.Email, claims.Permissions)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				response.RenderErr(ctx, response.ErrUnauthorized(fmt.Errorf("no member with email %s", claims.Email)))
				return
			}

			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("a.members.GetMember -> %w", err)))
			return
		}

		ctx.Set(MemberKey, member)
		ctx.Next()
	}
}

// RequirePermission rejects members without permission. It must run after
// VerifyJWT.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, _ := ctx.Get(MemberKey)
		member, ok := value.(domain.Member)
		if !ok || !member.Can(permission) {
			response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("permission %q is required", permission)))
			return
		}

		ctx.Next()
	}
}

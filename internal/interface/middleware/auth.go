package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/response"
)

const (
	CtxUserKey   = "currentUser"
	CtxUserIDKey = "userID"
)

// IdentityResolver maps an access token to the active user that owns it.
type IdentityResolver interface {
	ResolveAccessToken(ctx context.Context, token string) (*entity.User, error)
}

// ResolverFunc adapts a function to IdentityResolver.
type ResolverFunc func(ctx context.Context, token string) (*entity.User, error)

func (f ResolverFunc) ResolveAccessToken(ctx context.Context, token string) (*entity.User, error) {
	return f(ctx, token)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(helpers.AccessCookie); err == nil {
		return token
	}
	return ""
}

// Auth resolves the bearer token (Authorization header or access_token cookie)
// and stores the active user under CtxUserKey.
func Auth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "Not authenticated", nil)
			return
		}
		u, err := resolver.ResolveAccessToken(c.Request.Context(), token)
		if err != nil {
			msg := "Could not validate credentials"
			if errors.Is(err, application.ErrInactiveUser) {
				msg = "Inactive user"
			}
			response.Error[any](c, http.StatusUnauthorized, msg, nil)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok && u != nil
}

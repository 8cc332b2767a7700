package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/campus-exchange/internal/interface/http"
	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
)

// AuthModule serves /auth: registration, login, token refresh and logout.
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Resolver middleware.IdentityResolver
	Limits   Limits
}

func NewAuthModule(h *handlers.AuthHandler, resolver middleware.IdentityResolver, limits Limits) *AuthModule {
	return &AuthModule{Handler: h, Resolver: resolver, Limits: limits}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/auth")

	g.POST("/register", m.Limits.PerMinute(10, middleware.KeyByIPAndPath()), m.Handler.Register)
	g.POST("/login", m.Limits.PerMinute(10, middleware.KeyByIP()), m.Handler.Login)
	g.POST("/refresh", m.Limits.PerMinute(60, middleware.KeyByIP()), m.Handler.Refresh)

	auth := g.Group("/")
	auth.Use(middleware.Auth(m.Resolver))
	{
		auth.POST("/logout", handlers.WithUser(m.Handler.Logout))
		auth.GET("/me", handlers.WithUser(m.Handler.Me))
	}
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/campus-exchange/internal/interface/http"
	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
)

// UserModule serves /users: the caller's profile, verification flows,
// public profiles and search.
type UserModule struct {
	Handler  *handlers.UserHandler
	Resolver middleware.IdentityResolver
	Limits   Limits
}

func NewUserModule(h *handlers.UserHandler, resolver middleware.IdentityResolver, limits Limits) *UserModule {
	return &UserModule{Handler: h, Resolver: resolver, Limits: limits}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")

	g.POST("/verify-email", m.Limits.PerMinute(30, middleware.KeyByIPAndPath()), m.Handler.VerifyEmail)
	g.GET("/search", m.Limits.PerMinute(60, middleware.KeyByIP()), m.Handler.Search)

	auth := g.Group("/")
	auth.Use(middleware.Auth(m.Resolver))
	auth.Use(
		m.Limits.PerMinute(300, middleware.KeyByIP()),
		m.Limits.PerMinute(120, middleware.KeyByUserID()),
	)
	{
		auth.GET("/profile", handlers.WithUser(m.Handler.GetProfile))
		auth.PUT("/profile", handlers.WithUser(m.Handler.UpdateProfile))
		auth.POST("/profile/avatar", handlers.WithUser(m.Handler.UploadAvatar))
		auth.POST("/upload-id", handlers.WithUser(m.Handler.UploadID))
		auth.POST("/upload-id/file", handlers.WithUser(m.Handler.UploadIDFile))
		auth.GET("/verification-status", handlers.WithUser(m.Handler.VerificationStatus))
		auth.POST("/resend-verification", m.Limits.PerMinute(5, middleware.KeyByUserID()), handlers.WithUser(m.Handler.ResendVerification))
	}

	g.GET("/:id", m.Handler.PublicProfile)
}

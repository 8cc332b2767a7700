package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/schema"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/response"
)

type AuthHandler struct {
	Svc     *application.Service
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookieManager(cookieDomain, cookieSecure)}
}

func tokenResponse(p application.TokenPair) schema.TokenResponse {
	return schema.TokenResponse{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		TokenType:        "bearer",
		AccessExpiresAt:  p.AccessTokenExpiry,
		RefreshExpiresAt: p.RefreshTokenExpiry,
	}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req schema.UserCreate
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		University:  req.University,
		StudentID:   req.StudentID,
		Bio:         req.Bio,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, schema.RegisterData{UserID: u.ID, Email: u.Email}, "User registered successfully", nil)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req schema.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	_, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, tokenResponse(pair), "login successful", nil)
}

// Refresh POST /api/v1/auth/refresh. The refresh token comes from the body or the cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req schema.RefreshRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	token := req.RefreshToken
	if token == "" {
		token, _ = c.Cookie(helpers.RefreshCookie)
	}
	if token == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, tokenResponse(pair), "token refreshed", nil)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context, u *entity.User) {
	if err := h.Svc.Logout(c.Request.Context(), u.ID); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("logout failed")
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context, u *entity.User) {
	response.Success(c, http.StatusOK, schema.NewUserResponse(u), "current user", nil)
}

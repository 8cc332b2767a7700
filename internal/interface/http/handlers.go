package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/response"
	"github.com/oksasatya/campus-exchange/pkg/validation"
)

// WithUser adapts a handler that needs the authenticated user. It must run
// behind middleware.Auth.
func WithUser(fn func(*gin.Context, *entity.User)) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := middleware.CurrentUser(c)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "Not authenticated", nil)
			return
		}
		fn(c, u)
	}
}

// bindJSON binds and validates the body, writing a 422 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", validation.ToDetails(err))
		return false
	}
	return true
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "Email already registered", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "Incorrect email or password", nil)
	case errors.Is(err, application.ErrInactiveUser):
		response.Error[any](c, http.StatusUnauthorized, "Inactive user", nil)
	case errors.Is(err, application.ErrInvalidEmail):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", map[string]string{"email": "must be a valid email"})
	case errors.Is(err, helpers.ErrPasswordTooLong):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", map[string]string{"password": "must be at most 72 bytes long"})
	case errors.Is(err, application.ErrUnsupportedFile):
		response.Error[any](c, http.StatusUnprocessableEntity, "unsupported file type", map[string]string{"file": err.Error()})
	case errors.Is(err, application.ErrStorageUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, "file storage unavailable", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

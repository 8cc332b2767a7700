package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/schema"
	"github.com/oksasatya/campus-exchange/pkg/response"
)

const maxUploadBytes = 10 << 20

type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetProfile GET /api/v1/users/profile
func (h *UserHandler) GetProfile(c *gin.Context, u *entity.User) {
	c.JSON(http.StatusOK, schema.NewUserResponse(u))
}

// UpdateProfile PUT /api/v1/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context, u *entity.User) {
	var req schema.UserUpdate
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Svc.UpdateUser(c.Request.Context(), u.ID, application.UpdateProfileInput{
		FullName:        req.FullName,
		University:      req.University,
		StudentID:       req.StudentID,
		Bio:             req.Bio,
		PhoneNumber:     req.PhoneNumber,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, schema.NewUserResponse(updated))
}

// VerifyEmail POST /api/v1/users/verify-email
// Accepts the token without checking it.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	var req schema.EmailVerification
	if !bindJSON(c, &req) {
		return
	}
	response.Success(c, http.StatusOK,
		schema.EmailVerificationData{Token: req.Token, Status: "pending"},
		"Email verification endpoint (stub implementation)", nil)
}

// UploadID POST /api/v1/users/upload-id
func (h *UserHandler) UploadID(c *gin.Context, u *entity.User) {
	var req schema.IDVerification
	if !bindJSON(c, &req) {
		return
	}
	h.submitID(c, u, req.IDImageURL, req.Notes)
}

// UploadIDFile POST /api/v1/users/upload-id/file (multipart "file", optional "notes")
func (h *UserHandler) UploadIDFile(c *gin.Context, u *entity.User) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", map[string]string{"file": "is required"})
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read file", nil)
		return
	}
	defer f.Close()

	url, err := h.Svc.UploadIDDocument(c.Request.Context(), u.ID, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	var notes *string
	if n := c.PostForm("notes"); n != "" {
		notes = &n
	}
	h.submitID(c, u, url, notes)
}

func (h *UserHandler) submitID(c *gin.Context, u *entity.User, url string, notes *string) {
	if err := h.Svc.RequestIDReview(c.Request.Context(), u, url, notes); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, schema.IDUploadData{
		IDImageURL: url,
		Status:     string(entity.StatusPendingReview),
		Notes:      notes,
	}, "ID uploaded successfully. Manual verification pending.", nil)
}

// VerificationStatus GET /api/v1/users/verification-status
func (h *UserHandler) VerificationStatus(c *gin.Context, u *entity.User) {
	response.Success(c, http.StatusOK, schema.VerificationStatusData{
		IsVerified:         u.IsVerified,
		VerificationStatus: string(u.VerificationStatus),
		EmailVerified:      u.EmailVerified,
		VerificationNotes:  u.VerificationNotes,
	}, "Verification status retrieved", nil)
}

// ResendVerification POST /api/v1/users/resend-verification
func (h *UserHandler) ResendVerification(c *gin.Context, u *entity.User) {
	if u.EmailVerified {
		response.Error[any](c, http.StatusBadRequest, "Email already verified", nil)
		return
	}
	response.Success(c, http.StatusOK, schema.ResendVerificationData{Email: u.Email},
		"Verification email resent (stub implementation)", nil)
}

// UploadAvatar POST /api/v1/users/profile/avatar (multipart "file")
func (h *UserHandler) UploadAvatar(c *gin.Context, u *entity.User) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", map[string]string{"file": "is required"})
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read file", nil)
		return
	}
	defer f.Close()

	updated, err := h.Svc.UploadAvatar(c.Request.Context(), u.ID, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, schema.NewUserResponse(updated), "avatar updated", nil)
}

// PublicProfile GET /api/v1/users/:id
func (h *UserHandler) PublicProfile(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if !u.IsActive {
		response.Error[any](c, http.StatusNotFound, "User not found", nil)
		return
	}
	response.Success(c, http.StatusOK, schema.NewUserProfile(u), "profile", nil)
}

// Search GET /api/v1/users/search?q=&size=
func (h *UserHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.SearchUsers(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

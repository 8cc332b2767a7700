// Package schema declares the request and response shapes of the HTTP API.
// Request types carry validator tags that Gin enforces at bind time; response
// types are output only and are built from domain entities.
package schema

import (
	"time"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

// UserCreate is the registration payload.
type UserCreate struct {
	Email       string  `json:"email" binding:"required,emailaddr"`
	Password    string  `json:"password" binding:"required,strongpwd,maxbytes=72"`
	FullName    *string `json:"full_name" binding:"omitempty,max=120"`
	University  *string `json:"university" binding:"omitempty,max=160"`
	StudentID   *string `json:"student_id" binding:"omitempty,max=64"`
	Bio         *string `json:"bio" binding:"omitempty,max=1000"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,phone"`
}

// UserUpdate is a partial patch: nil fields are left untouched.
type UserUpdate struct {
	FullName        *string `json:"full_name" binding:"omitempty,max=120"`
	University      *string `json:"university" binding:"omitempty,max=160"`
	StudentID       *string `json:"student_id" binding:"omitempty,max=64"`
	Bio             *string `json:"bio" binding:"omitempty,max=1000"`
	PhoneNumber     *string `json:"phone_number" binding:"omitempty,phone"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,imageurl"`
}

// UserResponse is the private view of the caller's own account.
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           *string   `json:"full_name"`
	University         *string   `json:"university"`
	StudentID          *string   `json:"student_id"`
	Bio                *string   `json:"bio"`
	PhoneNumber        *string   `json:"phone_number"`
	ProfileImageURL    *string   `json:"profile_image_url"`
	IsVerified         bool      `json:"is_verified"`
	VerificationStatus string    `json:"verification_status"`
	IsActive           bool      `json:"is_active"`
	EmailVerified      bool      `json:"email_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		FullName:           u.FullName,
		University:         u.University,
		StudentID:          u.StudentID,
		Bio:                u.Bio,
		PhoneNumber:        u.PhoneNumber,
		ProfileImageURL:    u.ProfileImageURL,
		IsVerified:         u.IsVerified,
		VerificationStatus: string(u.VerificationStatus),
		IsActive:           u.IsActive,
		EmailVerified:      u.EmailVerified,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// UserProfile is the public view shown to other students.
type UserProfile struct {
	ID              string    `json:"id"`
	FullName        *string   `json:"full_name"`
	University      *string   `json:"university"`
	Bio             *string   `json:"bio"`
	ProfileImageURL *string   `json:"profile_image_url"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	MemberSince     string    `json:"member_since"`
}

func NewUserProfile(u *entity.User) UserProfile {
	return UserProfile{
		ID:              u.ID,
		FullName:        u.FullName,
		University:      u.University,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		IsVerified:      u.IsVerified,
		CreatedAt:       u.CreatedAt,
		MemberSince:     helpers.CalculateTimeAgo(u.CreatedAt),
	}
}

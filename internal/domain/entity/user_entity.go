package entity

import (
	"time"
)

// VerificationStatus is the trust state of an account.
type VerificationStatus string

const (
	StatusUnverified    VerificationStatus = "unverified"
	StatusPendingReview VerificationStatus = "pending_review"
	StatusVerified      VerificationStatus = "verified"
)

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field.
// Optional profile attributes are nil when never set.
type User struct {
	ID       string
	Email    string
	Password string

	FullName        *string
	University      *string
	StudentID       *string
	Bio             *string
	PhoneNumber     *string
	ProfileImageURL *string

	IsActive           bool
	IsVerified         bool
	VerificationStatus VerificationStatus
	EmailVerified      bool
	VerificationNotes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName falls back to the email when no full name is set.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}

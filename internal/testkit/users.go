package testkit

import (
	"sync"
	"time"

	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

// Password is the plain password of every fixture user.
const Password = "Password123"

const (
	PrimaryUserID    = "7f8a1c52-3c0e-4b8e-9d6f-1a2b3c4d5e6f"
	UnverifiedUserID = "0b9e2d41-6f7a-4c3b-8e1d-2f3a4b5c6d7e"
	InactiveUserID   = "5c4d3e2f-1a0b-4c9d-8e7f-6a5b4c3d2e1f"
)

var (
	hashOnce sync.Once
	hash     string
)

func passwordHash() string {
	hashOnce.Do(func() {
		helpers.SetPasswordCost(bcrypt.MinCost)
		var err error
		hash, err = helpers.HashPassword(Password)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})
	return hash
}

func ptr(s string) *string { return &s }

// PrimaryUser is verified, email verified and active.
func PrimaryUser() *entity.User {
	created := time.Now().UTC().AddDate(0, -3, 0)
	return &entity.User{
		ID:                 PrimaryUserID,
		Email:              "ayesha.khan@lums.edu.pk",
		Password:           passwordHash(),
		FullName:           ptr("Ayesha Khan"),
		University:         ptr("LUMS"),
		StudentID:          ptr("24100123"),
		Bio:                ptr("Selling calculus textbooks"),
		PhoneNumber:        ptr("+92 300 1234567"),
		IsActive:           true,
		IsVerified:         true,
		VerificationStatus: entity.StatusVerified,
		EmailVerified:      true,
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

// UnverifiedUser just registered: no verification of any kind.
func UnverifiedUser() *entity.User {
	created := time.Now().UTC().Add(-2 * time.Hour)
	return &entity.User{
		ID:                 UnverifiedUserID,
		Email:              "new.student@example.com",
		Password:           passwordHash(),
		FullName:           ptr("New Student"),
		IsActive:           true,
		VerificationStatus: entity.StatusUnverified,
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

// InactiveUser has been deactivated.
func InactiveUser() *entity.User {
	created := time.Now().UTC().AddDate(-1, 0, 0)
	return &entity.User{
		ID:                 InactiveUserID,
		Email:              "gone@ox.ac.uk",
		Password:           passwordHash(),
		VerificationStatus: entity.StatusUnverified,
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

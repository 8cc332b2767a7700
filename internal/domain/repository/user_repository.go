package repository

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
)

// ErrNotFound is returned when no user row matches.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . UserRepository

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateVerificationStatus(ctx context.Context, id string, status entity.VerificationStatus, notes string) error
}

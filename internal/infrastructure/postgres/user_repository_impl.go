package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/domain/repository"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02" // e.g. a malformed uuid in WHERE id = $1
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

const userColumns = `id, email, password_hash, full_name, university, student_id, bio, phone_number,
	profile_image_url, is_active, is_verified, verification_status, email_verified,
	verification_notes, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// q prefers the connection bound to the request over the shared pool.
func (r *UserRepository) q(ctx context.Context) querier {
	if conn, ok := ConnFrom(ctx); ok {
		return conn
	}
	return r.pool
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var status string
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FullName, &u.University, &u.StudentID, &u.Bio,
		&u.PhoneNumber, &u.ProfileImageURL, &u.IsActive, &u.IsVerified, &status, &u.EmailVerified,
		&u.VerificationNotes, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == invalidTextRepresentation {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "scan user")
	}
	u.VerificationStatus = entity.VerificationStatus(status)
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.VerificationStatus == "" {
		u.VerificationStatus = entity.StatusUnverified
	}
	row := r.q(ctx).QueryRow(ctx, `
		INSERT INTO users (email, password_hash, full_name, university, student_id, bio, phone_number,
			profile_image_url, is_active, is_verified, verification_status, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, strings.ToLower(u.Email), u.Password, u.FullName, u.University, u.StudentID, u.Bio, u.PhoneNumber,
		u.ProfileImageURL, u.IsActive, u.IsVerified, string(u.VerificationStatus), u.EmailVerified)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if pgCode(err) == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.q(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.q(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email)))
}

// Update writes the profile attributes of u. Verification columns are owned by
// UpdateVerificationStatus and are not touched here.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now().UTC()
	res, err := r.q(ctx).Exec(ctx, `
		UPDATE users
		SET full_name = $1, university = $2, student_id = $3, bio = $4, phone_number = $5,
			profile_image_url = $6, password_hash = $7, updated_at = $8
		WHERE id = $9
	`, u.FullName, u.University, u.StudentID, u.Bio, u.PhoneNumber, u.ProfileImageURL, u.Password,
		u.UpdatedAt, u.ID)
	if err != nil {
		if pgCode(err) == invalidTextRepresentation {
			return repository.ErrNotFound
		}
		return errors.Wrap(err, "update user")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateVerificationStatus(ctx context.Context, id string, status entity.VerificationStatus, notes string) error {
	res, err := r.q(ctx).Exec(ctx, `
		UPDATE users
		SET verification_status = $1, verification_notes = $2, is_verified = $3, updated_at = now()
		WHERE id = $4
	`, string(status), notes, status == entity.StatusVerified, id)
	if err != nil {
		if pgCode(err) == invalidTextRepresentation {
			return repository.ErrNotFound
		}
		return errors.Wrapf(err, "set verification status of %s", id)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)

package application

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	repo "github.com/oksasatya/campus-exchange/internal/domain/repository"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type RegisterInput struct {
	Email       string
	Password    string
	FullName    *string
	University  *string
	StudentID   *string
	Bio         *string
	PhoneNumber *string
}

// Register creates an unverified, active account. The email is stored lowercased.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !helpers.IsValidEmail(email) {
		return nil, errors.Wrapf(ErrInvalidEmail, "%q", helpers.MaskEmail(email))
	}
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, errors.Wrap(err, "lookup email")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	u := &entity.User{
		Email:              email,
		Password:           hash,
		FullName:           in.FullName,
		University:         in.University,
		StudentID:          in.StudentID,
		Bio:                in.Bio,
		PhoneNumber:        in.PhoneNumber,
		IsActive:           true,
		VerificationStatus: entity.StatusUnverified,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, errors.Wrap(err, "create user")
	}
	s.Logger.WithFields(helpers.UserFields(u.ID, u.Email)).
		WithField("university_email", helpers.IsUniversityEmail(u.Email)).
		Info("user registered")
	metricRegistrations.Add(1)
	_ = s.indexUser(ctx, u)
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing tokens.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.VerifyPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	return u, nil
}

// IssueTokens starts a new session for u and signs a token pair bound to it.
func (s *Service) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.signPair(u.ID, sid)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("sign tokens failed")
		return TokenPair{}, err
	}
	if s.Redis != nil {
		err := helpers.SaveSession(ctx, s.Redis, u.ID, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.DisplayName(),
			"sid":        sid,
			"created_at": nowRFC3339(),
		})
		if err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("redis session write failed")
		}
	}
	return pair, nil
}

func (s *Service) signPair(userID, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID, sid)
	if err != nil {
		return TokenPair{}, errors.Wrap(err, "sign access token")
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID, sid)
	if err != nil {
		return TokenPair{}, errors.Wrap(err, "sign refresh token")
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	metricLogins.Add(1)
	s.Logger.WithFields(helpers.UserFields(u.ID, u.Email)).Info("user logged in")
	return u, pair, nil
}

// sessionValid reports whether sid is the live session of userID.
// Without Redis, or while it is unreachable, every signed token is accepted
// until it expires. A missing session is rejected.
func (s *Service) sessionValid(ctx context.Context, userID, sid string) bool {
	if s.Redis == nil {
		return true
	}
	current, err := helpers.SessionID(ctx, s.Redis, userID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("redis session read failed; accepting token")
		return true
	}
	return current != "" && current == sid
}

// ResolveAccessToken maps a bearer token to the active user it was issued for.
func (s *Service) ResolveAccessToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !s.sessionValid(ctx, claims.UserID, claims.SessionID) {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	return u, nil
}

// Refresh rotates the session id and returns a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if !s.sessionValid(ctx, claims.UserID, claims.SessionID) {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil || !u.IsActive {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	sid := uuid.NewString()
	pair, err := s.signPair(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	if s.Redis != nil {
		if err := helpers.SaveSession(ctx, s.Redis, u.ID, map[string]any{"sid": sid, "updated_at": nowRFC3339()}); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("redis session rotate failed")
		}
	}
	return pair, u.ID, nil
}

// Logout ends the session of userID. Tokens issued for it stop resolving.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil {
		return nil
	}
	return errors.Wrap(helpers.DeleteSession(ctx, s.Redis, userID), "delete session")
}

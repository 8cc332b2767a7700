package application

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	repo "github.com/oksasatya/campus-exchange/internal/domain/repository"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInactiveUser       = errors.New("inactive user")
	ErrStorageUnavailable = errors.New("file storage not configured")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrInvalidEmail       = errors.New("invalid email")
)

// ObjectStore stores uploaded files and returns their public URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// NotifyConfig controls the emails enqueued by the service.
type NotifyConfig struct {
	Enabled          bool
	CompanyName      string
	SupportURL       string
	AdminReviewEmail string
}

// Service is the user management service: registration, sessions, profile
// and verification state.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger

	Redis        *redis.Client
	Store        ObjectStore
	ES           *elasticsearch.Client
	ESUsersIndex string
	Publisher    mailer.Publisher
	Notify       NotifyConfig
}

// Option configures optional collaborators of the Service.
type Option func(*Service)

func WithRedis(rdb *redis.Client) Option { return func(s *Service) { s.Redis = rdb } }
func WithStore(st ObjectStore) Option    { return func(s *Service) { s.Store = st } }
func WithSearch(es *elasticsearch.Client, index string) Option {
	return func(s *Service) { s.ES, s.ESUsersIndex = es, index }
}
func WithNotifier(p mailer.Publisher, cfg NotifyConfig) Option {
	return func(s *Service) { s.Publisher, s.Notify = p, cfg }
}

func NewService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	s := &Service{Repo: repo, JWT: jwt, Logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "get user")
	}
	return u, nil
}

// UpdateProfileInput is a partial patch; nil fields keep their stored value.
type UpdateProfileInput struct {
	FullName        *string
	University      *string
	StudentID       *string
	Bio             *string
	PhoneNumber     *string
	ProfileImageURL *string
}

// apply copies the provided fields onto u and returns the names of the fields that changed.
func (in UpdateProfileInput) apply(u *entity.User) []string {
	var changed []string
	set := func(name string, dst **string, v *string) {
		if v == nil {
			return
		}
		if *dst == nil || **dst != *v {
			changed = append(changed, name)
		}
		val := *v
		*dst = &val
	}
	set("full_name", &u.FullName, in.FullName)
	set("university", &u.University, in.University)
	set("student_id", &u.StudentID, in.StudentID)
	set("bio", &u.Bio, in.Bio)
	set("phone_number", &u.PhoneNumber, in.PhoneNumber)
	set("profile_image_url", &u.ProfileImageURL, in.ProfileImageURL)
	return changed
}

// UpdateUser applies in to the stored user. It returns ErrUserNotFound when the
// record no longer exists.
func (s *Service) UpdateUser(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	changed := in.apply(u)
	if len(changed) == 0 {
		return u, nil
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "update user")
	}
	s.Logger.WithFields(helpers.UserFields(u.ID, u.Email)).WithField("fields", changed).Info("profile updated")

	s.touchSession(ctx, u)
	_ = s.indexUser(ctx, u)
	s.notifyProfileUpdated(ctx, u, changed)
	return u, nil
}

// UpdateVerificationStatus records a verification state change requested for userID.
func (s *Service) UpdateVerificationStatus(ctx context.Context, userID string, status entity.VerificationStatus, note string) error {
	if err := s.Repo.UpdateVerificationStatus(ctx, userID, status, note); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return errors.Wrapf(err, "set verification status %s", status)
	}
	s.Logger.WithField("user_id", userID).WithField("status", status).Info("verification status changed")
	return nil
}

// touchSession mirrors profile data into the Redis session and keeps its TTL.
func (s *Service) touchSession(ctx context.Context, u *entity.User) {
	if s.Redis == nil {
		return
	}
	key := helpers.SessionKey(u.ID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"name":       u.DisplayName(),
		"updated_at": nowRFC3339(),
	})
	if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, pErr := pipe.Exec(ctx); pErr != nil {
		s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
	}
}

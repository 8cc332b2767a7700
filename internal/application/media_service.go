package application

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

var (
	AvatarFileTypes     = []string{"jpg", "jpeg", "png", "gif", "webp"}
	IDDocumentFileTypes = []string{"jpg", "jpeg", "png", "pdf"}
)

func (s *Service) upload(ctx context.Context, prefix, userID, filename, contentType string, allowed []string, r io.Reader) (string, error) {
	if s.Store == nil {
		return "", ErrStorageUnavailable
	}
	if !helpers.IsAllowedFileType(filename, allowed) {
		return "", errors.Wrapf(ErrUnsupportedFile, "%q", helpers.SanitizeFilename(filename))
	}
	url, err := s.Store.Upload(ctx, helpers.ObjectPath(prefix, userID, filename), contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).WithField("prefix", prefix).Error("upload failed")
		return "", errors.Wrap(err, "upload object")
	}
	return url, nil
}

// UploadAvatar stores an avatar image and points the profile at it.
func (s *Service) UploadAvatar(ctx context.Context, userID, filename, contentType string, r io.Reader) (*entity.User, error) {
	url, err := s.upload(ctx, "avatars", userID, filename, contentType, AvatarFileTypes, r)
	if err != nil {
		return nil, err
	}
	return s.UpdateUser(ctx, userID, UpdateProfileInput{ProfileImageURL: &url})
}

// UploadIDDocument stores an ID document and returns its URL. The caller then
// submits it for review with RequestIDReview.
func (s *Service) UploadIDDocument(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error) {
	return s.upload(ctx, "id-documents", userID, filename, contentType, IDDocumentFileTypes, r)
}

// RequestIDReview moves u to pending_review and notifies reviewers.
func (s *Service) RequestIDReview(ctx context.Context, u *entity.User, imageURL string, notes *string) error {
	if err := s.UpdateVerificationStatus(ctx, u.ID, entity.StatusPendingReview, "ID uploaded: "+imageURL); err != nil {
		return err
	}
	metricIDReviews.Add(1)
	s.NotifyIDReview(ctx, u, imageURL, notes)
	return nil
}

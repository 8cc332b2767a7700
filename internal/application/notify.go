package application

import (
	"context"
	"reflect"
	"time"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/mailer"
	"github.com/oksasatya/campus-exchange/pkg/mailer/templates"
)

func (s *Service) canNotify() bool {
	if !s.Notify.Enabled || s.Publisher == nil {
		return false
	}
	// a typed nil *RabbitPublisher inside the interface
	v := reflect.ValueOf(s.Publisher)
	return !(v.Kind() == reflect.Ptr && v.IsNil())
}

func (s *Service) enqueue(ctx context.Context, job mailer.EmailJob) {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Publisher.PublishJSON(c, job); err != nil {
		s.Logger.WithError(err).
			WithField("template", job.Template).
			WithField("to", helpers.MaskEmail(job.To)).
			Warn("enqueue email failed")
		return
	}
	metricEmailsQueued.Add(job.Template, 1)
}

// NotifyIDReview asks reviewers to check a freshly uploaded ID document.
func (s *Service) NotifyIDReview(ctx context.Context, u *entity.User, imageURL string, notes *string) {
	if !s.canNotify() || s.Notify.AdminReviewEmail == "" {
		return
	}
	data := templates.IDReviewData{
		CompanyName: s.Notify.CompanyName,
		UserID:      u.ID,
		UserName:    u.DisplayName(),
		UserEmail:   helpers.MaskEmail(u.Email),
		University:  deref(u.University),
		ImageURL:    imageURL,
		Notes:       deref(notes),
		SubmittedAt: time.Now(),
	}
	s.enqueue(ctx, mailer.EmailJob{
		To:       s.Notify.AdminReviewEmail,
		Template: templates.IDReviewRequested,
		Data:     data.ToMap(),
	})
}

func (s *Service) notifyProfileUpdated(ctx context.Context, u *entity.User, changed []string) {
	if !s.canNotify() {
		return
	}
	data := templates.ProfileUpdatedData{
		CompanyName: s.Notify.CompanyName,
		Name:        u.DisplayName(),
		Changed:     changed,
		SupportURL:  s.Notify.SupportURL,
		UpdatedAt:   time.Now(),
	}
	s.enqueue(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: templates.ProfileUpdated,
		Data:     data.ToMap(),
	})
}

package mailer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/pkg/mailer/templates"
)

// Sender delivers a rendered email.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Sender
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Outcome tells the consumer how to settle a delivery.
type Outcome int

const (
	Ack     Outcome = iota
	Drop            // malformed job, never retried
	Requeue         // transient send failure
)

var ErrEmptyJob = errors.New("email job has no recipient or body")

// Prepare renders job.Template into Subject, Text and HTML when set.
func Prepare(job *EmailJob) error {
	if job.To == "" {
		return ErrEmptyJob
	}
	if job.Template == "" {
		if job.Subject == "" || (job.Text == "" && job.HTML == "") {
			return ErrEmptyJob
		}
		return nil
	}
	if !templates.Known(job.Template) {
		return errors.Newf("unknown template %q", job.Template)
	}
	subject, text, html, err := templates.Render(job.Template, job.Data)
	if err != nil {
		return errors.Wrapf(err, "render %s", job.Template)
	}
	job.Subject, job.Text, job.HTML = subject, text, html
	return nil
}

// Worker turns queued jobs into sent emails.
type Worker struct {
	Sender Sender
	Logger *logrus.Logger
}

// Handle processes one raw queue message.
func (w *Worker) Handle(ctx context.Context, body []byte) Outcome {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.Logger.WithError(err).Warn("bad email job")
		return Drop
	}
	if err := Prepare(&job); err != nil {
		w.Logger.WithError(err).WithField("template", job.Template).Warn("cannot prepare email job")
		return Drop
	}
	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := w.Sender.Send(c, job.To, job.Subject, job.Text, job.HTML); err != nil {
		w.Logger.WithError(err).WithField("template", job.Template).Error("send failed")
		return Requeue
	}
	w.Logger.WithField("template", job.Template).Info("email sent")
	return Ack
}

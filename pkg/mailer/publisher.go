package mailer

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Publisher

// Publisher enqueues email jobs. helpers.RabbitPublisher is the production implementation.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

package notification

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"studio/config"
	"studio/infras/otel"
	"studio/shared/constant"
	"studio/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

// Dispatcher delivers one composed message through the SMTP relay. Delivery
// failures come back as DeliveryError so the outbox worker can schedule a
// retry instead of dropping the message.
type Dispatcher interface {
	Send(ctx context.Context, message Message) error
}

type dispatcherImpl struct {
	client *mail.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewDispatcher(client *mail.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (d *dispatcherImpl) Send(ctx context.Context, message Message) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	msg := mail.NewMsg()
	if err = msg.From(d.cfg.Mail.Sender); err != nil {
		return failure.DeliveryError(err) //nolint:wrapcheck
	}

	if err = msg.To(message.Recipient); err != nil {
		return failure.DeliveryError(err) //nolint:wrapcheck
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.Body)

	if err = d.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("recipient", message.Recipient).Msg("failed to deliver notification")

		return failure.DeliveryError(err) //nolint:wrapcheck
	}

	log.Info().Str("recipient", message.Recipient).Str("subject", message.Subject).Msg("notification delivered")

	return nil
}

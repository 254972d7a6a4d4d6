package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"studio/infras/otel"
	"studio/internal/domains/outbox/model"
	"studio/internal/domains/outbox/repository"
	"studio/internal/notification"
	"studio/shared/constant"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Outbox durably queues composed notifications. Callers get success once
// the row is persisted; delivery happens asynchronously in the worker.
type Outbox interface {
	Enqueue(ctx context.Context, message notification.Message) error
}

type serviceImpl struct {
	repo repository.Outbox
	otel otel.Otel
}

func New(repo repository.Outbox, otel otel.Otel) Outbox {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Enqueue(ctx context.Context, message notification.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".outbox.Enqueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	row := model.OutboxMessage{
		ID:            uuid.NewString(),
		Recipient:     message.Recipient,
		Subject:       message.Subject,
		Body:          message.Body,
		Status:        model.StatusQueued,
		Attempts:      0,
		NextAttemptAt: now,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err = s.repo.Insert(ctx, row); err != nil {
		log.Error().Err(err).Str("recipient", message.Recipient).Msg("failed to enqueue notification")

		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	log.Info().Str("id", row.ID).Str("recipient", row.Recipient).Msg("notification enqueued")

	return nil
}

package worker

import (
	"context"
	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/outbox/model"
	"studio/internal/domains/outbox/repository"
	"studio/internal/notification"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultPollIntervalSeconds = 5
	defaultBatchSize           = 20
	defaultMaxAttempts         = 4
)

// retryDelays is the backoff schedule between delivery attempts. Attempts
// past the schedule reuse the last delay.
var retryDelays = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	30 * time.Second,
}

// Worker drains the notification outbox: it polls for due queued rows,
// dispatches each over SMTP, and reschedules or fails the ones that
// could not be delivered.
type Worker struct {
	repo       repository.Outbox
	dispatcher notification.Dispatcher
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Outbox, dispatcher notification.Dispatcher, cfg *config.Config, otel otel.Otel) *Worker {
	return &Worker{
		repo:       repo,
		dispatcher: dispatcher,
		cfg:        cfg,
		otel:       otel,
	}
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	interval := w.cfg.Outbox.PollIntervalSeconds
	if interval <= 0 {
		interval = defaultPollIntervalSeconds
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	log.Info().Int("intervalSeconds", interval).Msg("outbox worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("outbox worker stopped")

			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch delivers one batch of due messages.
func (w *Worker) ProcessBatch(ctx context.Context) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".ProcessBatch")
	defer scope.End()

	batchSize := w.cfg.Outbox.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	messages, err := w.repo.GetDue(ctx, batchSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch due outbox messages")
		scope.TraceError(err)

		return
	}

	for _, message := range messages {
		w.deliver(ctx, message)
	}
}

func (w *Worker) deliver(ctx context.Context, message model.OutboxMessage) {
	err := w.dispatcher.Send(ctx, notification.Message{
		Recipient: message.Recipient,
		Subject:   message.Subject,
		Body:      message.Body,
	})

	attempts := message.Attempts + 1
	now := timezone.Now()

	fields := map[string]any{
		"attempts":              attempts,
		constant.FieldUpdatedAt: now,
	}

	switch {
	case err == nil:
		fields[model.FieldStatus] = model.StatusSent
	case attempts >= w.maxAttempts():
		fields[model.FieldStatus] = model.StatusFailed
		fields["last_error"] = err.Error()

		log.Error().Err(err).Str("id", message.ID).Int("attempts", attempts).Msg("outbox message failed permanently")
	default:
		fields[model.FieldStatus] = model.StatusQueued
		fields["last_error"] = err.Error()
		fields[model.FieldNextAttemptAt] = now.Add(backoff(attempts))

		log.Warn().Err(err).Str("id", message.ID).Int("attempts", attempts).Msg("outbox delivery failed, retrying")
	}

	if updateErr := w.repo.Update(ctx, fields, filterByMessageID(message.ID)); updateErr != nil {
		log.Error().Err(updateErr).Str("id", message.ID).Msg("failed to update outbox message")
	}
}

func (w *Worker) maxAttempts() int {
	if w.cfg.Outbox.MaxAttempts > 0 {
		return w.cfg.Outbox.MaxAttempts
	}

	return defaultMaxAttempts
}

// backoff returns the delay before the next attempt, indexed by how many
// attempts have already been made.
func backoff(attempts int) time.Duration {
	index := attempts - 1
	if index >= len(retryDelays) {
		index = len(retryDelays) - 1
	}

	if index < 0 {
		index = 0
	}

	return retryDelays[index]
}

func filterByMessageID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

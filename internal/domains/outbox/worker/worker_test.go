package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/config"
	"studio/infras/otel/mocks"
	outboxMocks "studio/internal/domains/outbox/mocks"
	"studio/internal/domains/outbox/model"
	"studio/internal/domains/outbox/worker"
	notificationMocks "studio/internal/notification/mocks"
	gDto "studio/shared/dto"
	"studio/shared/timezone"
)

type workerFixture struct {
	repo       *outboxMocks.MockOutbox
	dispatcher *notificationMocks.MockDispatcher
	worker     *worker.Worker
}

func newWorkerFixture(t *testing.T) workerFixture {
	ctrl := gomock.NewController(t)

	repo := outboxMocks.NewMockOutbox(ctrl)
	dispatcher := notificationMocks.NewMockDispatcher(ctrl)

	cfg := &config.Config{}
	cfg.Outbox.BatchSize = 10
	cfg.Outbox.MaxAttempts = 4

	return workerFixture{
		repo:       repo,
		dispatcher: dispatcher,
		worker:     worker.New(repo, dispatcher, cfg, mocks.NewOtel()),
	}
}

func queuedMessage(id string, attempts int) model.OutboxMessage {
	return model.OutboxMessage{
		ID:            id,
		Recipient:     "sara@uaeu.ac.ae",
		Subject:       "⏰ Reminder: Studio Reservation on 2026-09-15",
		Body:          "<html></html>",
		Status:        model.StatusQueued,
		Attempts:      attempts,
		NextAttemptAt: timezone.Now(),
	}
}

func TestWorker_ProcessBatch_DeliversAndMarksSent(t *testing.T) {
	f := newWorkerFixture(t)

	message := queuedMessage("a1b2", 0)

	f.repo.EXPECT().
		GetDue(gomock.Any(), 10).
		Return([]model.OutboxMessage{message}, nil)

	f.dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusSent, fields[model.FieldStatus])
			assert.Equal(t, 1, fields["attempts"])
			assert.NotContains(t, fields, "last_error")
			assert.NotContains(t, fields, model.FieldNextAttemptAt)

			return nil
		})

	f.worker.ProcessBatch(context.Background())
}

func TestWorker_ProcessBatch_RequeuesWithBackoff(t *testing.T) {
	tests := []struct {
		name        string
		attempts    int
		wantBackoff time.Duration
	}{
		{name: "first failure retries after a second", attempts: 0, wantBackoff: 1 * time.Second},
		{name: "second failure backs off to five seconds", attempts: 1, wantBackoff: 5 * time.Second},
		{name: "third failure backs off to thirty seconds", attempts: 2, wantBackoff: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkerFixture(t)

			message := queuedMessage("a1b2", tt.attempts)

			f.repo.EXPECT().
				GetDue(gomock.Any(), 10).
				Return([]model.OutboxMessage{message}, nil)

			f.dispatcher.EXPECT().
				Send(gomock.Any(), gomock.Any()).
				Return(errors.New("smtp unreachable"))

			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, model.StatusQueued, fields[model.FieldStatus])
					assert.Equal(t, tt.attempts+1, fields["attempts"])
					assert.Equal(t, "smtp unreachable", fields["last_error"])

					next, ok := fields[model.FieldNextAttemptAt].(time.Time)
					assert.True(t, ok)
					assert.WithinDuration(t, timezone.Now().Add(tt.wantBackoff), next, time.Second)

					return nil
				})

			f.worker.ProcessBatch(context.Background())
		})
	}
}

func TestWorker_ProcessBatch_FailsAfterMaxAttempts(t *testing.T) {
	f := newWorkerFixture(t)

	message := queuedMessage("a1b2", 3)

	f.repo.EXPECT().
		GetDue(gomock.Any(), 10).
		Return([]model.OutboxMessage{message}, nil)

	f.dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("mailbox rejected"))

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])
			assert.Equal(t, 4, fields["attempts"])
			assert.Equal(t, "mailbox rejected", fields["last_error"])
			assert.NotContains(t, fields, model.FieldNextAttemptAt)

			return nil
		})

	f.worker.ProcessBatch(context.Background())
}

func TestWorker_ProcessBatch_FetchErrorStopsBatch(t *testing.T) {
	f := newWorkerFixture(t)

	f.repo.EXPECT().
		GetDue(gomock.Any(), 10).
		Return(nil, errors.New("database error"))

	f.worker.ProcessBatch(context.Background())
}

func TestWorker_Run_StopsOnContextCancel(t *testing.T) {
	f := newWorkerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		f.worker.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

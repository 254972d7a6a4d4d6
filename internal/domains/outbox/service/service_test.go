package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/infras/otel/mocks"
	outboxMocks "studio/internal/domains/outbox/mocks"
	"studio/internal/domains/outbox/model"
	"studio/internal/domains/outbox/service"
	"studio/internal/notification"
)

func TestOutboxService_Enqueue(t *testing.T) {
	message := notification.Message{
		Recipient: "studio-admin@uaeu.ac.ae",
		Subject:   "New Studio Reservation - Sara Al Marri",
		Body:      "<html></html>",
	}

	tests := []struct {
		name      string
		setupMock func(repo *outboxMocks.MockOutbox)
		wantErr   bool
	}{
		{
			name: "queued with a fresh id and zero attempts",
			setupMock: func(repo *outboxMocks.MockOutbox) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row model.OutboxMessage) error {
						assert.NotEmpty(t, row.ID)
						assert.Equal(t, model.StatusQueued, row.Status)
						assert.Zero(t, row.Attempts)
						assert.Equal(t, message.Recipient, row.Recipient)
						assert.Equal(t, message.Subject, row.Subject)
						assert.False(t, row.NextAttemptAt.IsZero())

						return nil
					})
			},
		},
		{
			name: "insert error",
			setupMock: func(repo *outboxMocks.MockOutbox) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := outboxMocks.NewMockOutbox(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel())

			err := svc.Enqueue(context.Background(), message)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

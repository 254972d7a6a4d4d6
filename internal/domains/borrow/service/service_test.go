package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/config"
	"studio/infras/otel/mocks"
	borrowMocks "studio/internal/domains/borrow/mocks"
	"studio/internal/domains/borrow/model"
	"studio/internal/domains/borrow/model/dto"
	"studio/internal/domains/borrow/service"
	outboxMocks "studio/internal/domains/outbox/service/mocks"
	"studio/internal/domains/request"
	eventMocks "studio/internal/events/mocks"
	"studio/internal/notification"
	notificationMocks "studio/internal/notification/mocks"
	cacheMocks "studio/shared/cache/mocks"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type borrowFixture struct {
	repo     *borrowMocks.MockBorrow
	composer *notificationMocks.MockComposer
	outbox   *outboxMocks.MockOutbox
	events   *eventMocks.MockPublisher
	cache    *cacheMocks.MockRedisCache
	svc      service.Borrow
}

func newBorrowFixture(t *testing.T) borrowFixture {
	ctrl := gomock.NewController(t)

	repo := borrowMocks.NewMockBorrow(ctrl)
	composer := notificationMocks.NewMockComposer(ctrl)
	outbox := outboxMocks.NewMockOutbox(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return borrowFixture{
		repo:     repo,
		composer: composer,
		outbox:   outbox,
		events:   publisher,
		cache:    redis,
		svc:      service.New(repo, composer, outbox, publisher, cfg, redis, mocks.NewOtel()),
	}
}

func pendingBorrow(id int64) model.Borrow {
	return model.Borrow{
		ID:            id,
		StudentName:   "Omar Al Ketbi",
		StudentID:     "202298765",
		Email:         "omar@uaeu.ac.ae",
		Phone:         "0559876543",
		College:       "CHSS",
		Department:    "Media",
		EquipmentType: "Camera",
		EquipmentName: "Sony FX3, tripod, lav mic",
		BorrowDate:    "2026-09-20",
		ReturnDate:    "2026-09-22",
		Purpose:       "Documentary shoot",
		Supervisor:    "Dr. Ahmed",
		Status:        request.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func TestBorrowService_Create(t *testing.T) {
	req := dto.CreateBorrowRequest{
		StudentName:   "Omar Al Ketbi",
		StudentID:     "202298765",
		Email:         "omar@uaeu.ac.ae",
		Phone:         "0559876543",
		College:       "CHSS",
		Department:    "Media",
		EquipmentType: "Camera",
		EquipmentName: "Sony FX3, tripod, lav mic",
		BorrowDate:    "2026-09-20",
		ReturnDate:    "2026-09-22",
		Purpose:       "Documentary shoot",
		Supervisor:    "Dr. Ahmed",
	}

	tests := []struct {
		name      string
		setupMock func(f borrowFixture)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "successful creation queues admin notification",
			setupMock: func(f borrowFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)

				f.composer.EXPECT().
					Compose(notification.KindBorrowSubmitted, gomock.Any()).
					Return(notification.Message{Recipient: "admin@uaeu.ac.ae"}, nil)

				f.outbox.EXPECT().
					Enqueue(gomock.Any(), gomock.Any()).
					Return(nil)

				f.events.EXPECT().
					RequestSubmitted(gomock.Any(), "borrow", int64(3))
			},
			wantID: 3,
		},
		{
			name: "repository error",
			setupMock: func(f borrowFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBorrowFixture(t)
			tt.setupMock(f)

			id, err := f.svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBorrowService_GetAll(t *testing.T) {
	f := newBorrowFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Borrow{pendingBorrow(1)}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Sony FX3, tripod, lav mic", res[0].EquipmentName)
}

func TestBorrowService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		setupMock func(f borrowFixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "reject pending borrow request",
			status: "Rejected",
			setupMock: func(f borrowFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBorrow(3), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.events.EXPECT().
					StatusChanged(gomock.Any(), "borrow", int64(3), request.StatusRejected)
			},
		},
		{
			name:      "unknown status",
			status:    "Returned",
			setupMock: func(f borrowFixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "decided borrow request cannot change again",
			status: "Approved",
			setupMock: func(f borrowFixture) {
				decided := pendingBorrow(3)
				decided.Status = request.StatusRejected

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(decided, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "missing borrow request",
			status: "Approved",
			setupMock: func(f borrowFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Borrow{}, sql.ErrNoRows)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBorrowFixture(t)
			tt.setupMock(f)

			err := f.svc.UpdateStatus(context.Background(), 3, dto.UpdateStatusRequest{Status: tt.status})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBorrowService_Delete(t *testing.T) {
	f := newBorrowFixture(t)

	f.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := f.svc.Delete(context.Background(), 3)

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBorrowService_SendReminder(t *testing.T) {
	f := newBorrowFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(pendingBorrow(3), nil)

	f.composer.EXPECT().
		Compose(notification.KindBorrowReminder, gomock.Any()).
		Return(notification.Message{Recipient: "omar@uaeu.ac.ae"}, nil)

	f.outbox.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, f.svc.SendReminder(context.Background(), 3))
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/outbox/model"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/logger"
	gRepo "studio/shared/repository"
	"studio/shared/timezone"
)

type Outbox interface {
	Insert(ctx context.Context, message model.OutboxMessage) error
	GetDue(ctx context.Context, limit int) ([]model.OutboxMessage, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.OutboxMessage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Outbox {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OutboxMessage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a queued message. Outbox rows carry a caller-assigned
// uuid, so the generic serial-key insert does not apply here.
func (repo *repositoryImpl) Insert(ctx context.Context, message model.OutboxMessage) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.Insert")
	defer scope.End()

	query := fmt.Sprintf(
		`INSERT INTO %s (id, recipient, subject, body, status, attempts, last_error, next_attempt_at, created_at, updated_at)
		VALUES (:id, :recipient, :subject, :body, :status, :attempts, :last_error, :next_attempt_at, :created_at, :updated_at)`,
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, message); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

// GetDue returns queued messages whose next attempt time has passed,
// oldest first.
func (repo *repositoryImpl) GetDue(ctx context.Context, limit int) ([]model.OutboxMessage, error) {
	params := gDto.QueryParams{
		Page:    1,
		Limit:   limit,
		SortBy:  model.FieldNextAttemptAt,
		SortDir: "ASC",
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusQueued,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldNextAttemptAt,
				Value:    timezone.Now(),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/borrow/model"
	"studio/internal/domains/borrow/model/dto"
	"studio/internal/domains/borrow/repository"
	outboxService "studio/internal/domains/outbox/service"
	"studio/internal/domains/request"
	"studio/internal/events"
	"studio/internal/notification"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBorrow    = "borrow:get"
	cacheGetAllBorrow = "borrow:gets"
	cacheCountBorrow  = "borrow:count"
)

type Borrow interface {
	Create(ctx context.Context, req dto.CreateBorrowRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BorrowResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BorrowResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
	Delete(ctx context.Context, id int64) error
	SendReminder(ctx context.Context, id int64) error
	SendStatusNotice(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Borrow
	composer notification.Composer
	outbox   outboxService.Outbox
	events   events.Publisher
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Borrow,
	composer notification.Composer,
	outbox outboxService.Outbox,
	events events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Borrow {
	return &serviceImpl{
		repo:     repo,
		composer: composer,
		outbox:   outbox,
		events:   events,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create persists the borrow request and queues the admin notification.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBorrowRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	borrow := req.ToModel()

	id, err = s.repo.Insert(ctx, borrow)
	if err != nil {
		log.Error().Err(err).Msg("failed to create borrow request")

		return 0, fmt.Errorf("failed to create borrow request: %w", err)
	}

	borrow.ID = id

	message, err := s.composer.Compose(notification.KindBorrowSubmitted, snapshot(borrow))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to compose borrow notification")

		return 0, err
	}

	if err = s.outbox.Enqueue(ctx, message); err != nil {
		return 0, err
	}

	s.events.RequestSubmitted(ctx, events.EntityBorrow, id)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBorrow)
		shared.InvalidateCaches(c, s.cache, cacheCountBorrow)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.BorrowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBorrow, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for borrow requests")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get borrow requests")

		return res, fmt.Errorf("failed to get borrow requests: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save borrow requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBorrow, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count borrow requests")

		return res, fmt.Errorf("failed to count borrow requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save borrow count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BorrowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBorrow, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for borrow request")

		return res, nil
	}

	borrow, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(borrow)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save borrow request to cache")
		}
	}()

	return res, nil
}

// UpdateStatus applies an admin decision under the same lifecycle rules as
// reservations.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := request.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	borrow, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	if err = request.Transition(borrow.Status, target); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldStatus:       target,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update borrow status")

		return fmt.Errorf("failed to update borrow status: %w", err)
	}

	s.events.StatusChanged(ctx, events.EntityBorrow, id, target)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if borrow request exists")

		return fmt.Errorf("failed to check if borrow request exists: %w", err)
	}

	if !exist {
		return failure.NotFound("borrow request not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete borrow request")

		return fmt.Errorf("failed to delete borrow request: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// SendReminder queues the equipment-return reminder for the student on
// record.
func (s *serviceImpl) SendReminder(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.SendReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.notify(ctx, id, notification.KindBorrowReminder)
}

// SendStatusNotice queues the decision notice. It fails while the record is
// still pending.
func (s *serviceImpl) SendStatusNotice(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".borrow.SendStatusNotice")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.notify(ctx, id, notification.KindBorrowStatus)
}

func (s *serviceImpl) notify(ctx context.Context, id int64, kind notification.Kind) error {
	borrow, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	message, err := s.composer.Compose(kind, snapshot(borrow))
	if err != nil {
		return err
	}

	return s.outbox.Enqueue(ctx, message)
}

func (s *serviceImpl) fetch(ctx context.Context, id int64) (model.Borrow, error) {
	borrow, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, sql.ErrNoRows) {
		return borrow, failure.NotFound("borrow request not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get borrow request")

		return borrow, fmt.Errorf("failed to get borrow request: %w", err)
	}

	return borrow, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBorrow, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete borrow request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBorrow)
		shared.InvalidateCaches(c, s.cache, cacheCountBorrow)
	}()
}

func snapshot(borrow model.Borrow) notification.Data {
	return notification.Data{
		StudentName:   borrow.StudentName,
		StudentID:     borrow.StudentID,
		Email:         borrow.Email,
		Phone:         borrow.Phone,
		College:       borrow.College,
		Department:    borrow.Department,
		EquipmentType: borrow.EquipmentType,
		EquipmentName: borrow.EquipmentName,
		BorrowDate:    borrow.BorrowDate,
		ReturnDate:    borrow.ReturnDate,
		Purpose:       borrow.Purpose,
		Supervisor:    borrow.Supervisor,
		Status:        borrow.Status,
	}
}

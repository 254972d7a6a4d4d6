package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"studio/config"
	"studio/infras/otel"
	outboxService "studio/internal/domains/outbox/service"
	"studio/internal/domains/request"
	"studio/internal/domains/reservation/model"
	"studio/internal/domains/reservation/model/dto"
	"studio/internal/domains/reservation/repository"
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
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ReservationResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
	Delete(ctx context.Context, id int64) error
	SendReminder(ctx context.Context, id int64) error
	SendStatusNotice(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Reservation
	composer notification.Composer
	outbox   outboxService.Outbox
	events   events.Publisher
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Reservation,
	composer notification.Composer,
	outbox outboxService.Outbox,
	events events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
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

// Create persists the reservation and queues the admin notification. The
// call succeeds once both are durable; delivery itself is the worker's job.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation := req.ToModel()

	id, err = s.repo.Insert(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return 0, fmt.Errorf("failed to create reservation: %w", err)
	}

	reservation.ID = id

	message, err := s.composer.Compose(notification.KindReservationSubmitted, snapshot(reservation))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to compose reservation notification")

		return 0, err
	}

	if err = s.outbox.Enqueue(ctx, message); err != nil {
		return 0, err
	}

	s.events.RequestSubmitted(ctx, events.EntityReservation, id)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// UpdateStatus applies an admin decision. The target must parse to a legal
// status and the record must still be pending.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := request.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	if err = request.Transition(reservation.Status, target); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldStatus:       target,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	s.events.StatusChanged(ctx, events.EntityReservation, id, target)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// SendReminder queues the upcoming-session reminder for the student on
// record.
func (s *serviceImpl) SendReminder(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.SendReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.notify(ctx, id, notification.KindReservationReminder)
}

// SendStatusNotice queues the decision notice. It fails while the record is
// still pending.
func (s *serviceImpl) SendStatusNotice(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.SendStatusNotice")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.notify(ctx, id, notification.KindReservationStatus)
}

func (s *serviceImpl) notify(ctx context.Context, id int64, kind notification.Kind) error {
	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	message, err := s.composer.Compose(kind, snapshot(reservation))
	if err != nil {
		return err
	}

	return s.outbox.Enqueue(ctx, message)
}

func (s *serviceImpl) fetch(ctx context.Context, id int64) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, sql.ErrNoRows) {
		return reservation, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func snapshot(reservation model.Reservation) notification.Data {
	return notification.Data{
		StudentName:        reservation.StudentName,
		StudentID:          reservation.StudentID,
		Email:              reservation.Email,
		Phone:              reservation.Phone,
		College:            reservation.College,
		Department:         reservation.Department,
		Date:               reservation.Date,
		FromTime:           reservation.FromTime,
		ToTime:             reservation.ToTime,
		Duration:           reservation.Duration,
		Supervisor:         reservation.Supervisor,
		StudioType:         reservation.StudioType,
		ProjectTitle:       reservation.ProjectTitle,
		ProjectDescription: reservation.ProjectDescription,
		EquipmentNeeded:    reservation.EquipmentNeeded,
		Status:             reservation.Status,
	}
}

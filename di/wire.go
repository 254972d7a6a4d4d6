//go:build wireinject
// +build wireinject

package di

import (
	"studio/config"
	"studio/infras/kafka"
	"studio/infras/mailer"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/infras/redis"
	"studio/internal/events"
	"studio/internal/notification"
	"studio/shared/cache"
	"studio/transport/http"
	"studio/transport/http/middleware"
	"studio/transport/http/router"

	borrowRepository "studio/internal/domains/borrow/repository"
	borrowService "studio/internal/domains/borrow/service"
	outboxRepository "studio/internal/domains/outbox/repository"
	outboxService "studio/internal/domains/outbox/service"
	outboxWorker "studio/internal/domains/outbox/worker"
	reservationRepository "studio/internal/domains/reservation/repository"
	reservationService "studio/internal/domains/reservation/service"

	borrowHandler "studio/internal/handlers/borrow"
	classesHandler "studio/internal/handlers/classes"
	reservationHandler "studio/internal/handlers/reservation"

	"github.com/google/wire"
)

// Application bundles the two long-running halves of the process: the API
// server and the outbox worker draining queued notifications.
type Application struct {
	HTTP   *http.HTTP
	Worker *outboxWorker.Worker
}

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notifications = wire.NewSet(
	notification.NewComposer,
	notification.NewDispatcher,
	events.NewPublisher,
)

var outboxDomain = wire.NewSet(
	outboxRepository.New,
	outboxService.New,
	outboxWorker.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var borrowDomain = wire.NewSet(
	borrowRepository.New,
	borrowService.New,
)

var domains = wire.NewSet(
	outboxDomain,
	reservationDomain,
	borrowDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	classesHandler.New,
	reservationHandler.New,
	borrowHandler.New,
	router.New,
)

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		notifications,
		domains,
		routing,
		http.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}

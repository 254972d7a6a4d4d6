// Package events publishes request lifecycle events for downstream
// consumers (dashboards, audit pipelines). Publishing is best effort and
// never fails the triggering operation.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"studio/config"
	"studio/infras/kafka"
	"studio/internal/domains/request"
	"studio/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeRequestSubmitted     = "request.submitted"
	TypeRequestStatusChanged = "request.status_changed"

	EntityReservation = "reservation"
	EntityBorrow      = "borrow"
)

// Event is the wire payload emitted on the lifecycle topic.
type Event struct {
	Type       string         `json:"type"`
	Entity     string         `json:"entity"`
	EntityID   int64          `json:"entityId"`
	Status     request.Status `json:"status"`
	OccurredAt time.Time      `json:"occurredAt"`
}

type Publisher interface {
	RequestSubmitted(ctx context.Context, entity string, id int64)
	StatusChanged(ctx context.Context, entity string, id int64, status request.Status)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

// NewPublisher returns a kafka-backed publisher, or a no-op one when the
// broker is disabled in config.
func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	if !cfg.Kafka.Enable {
		return &noopPublisher{}
	}

	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) RequestSubmitted(ctx context.Context, entity string, id int64) {
	p.publish(ctx, Event{
		Type:       TypeRequestSubmitted,
		Entity:     entity,
		EntityID:   id,
		Status:     request.StatusPending,
		OccurredAt: timezone.Now(),
	})
}

func (p *publisherImpl) StatusChanged(ctx context.Context, entity string, id int64, status request.Status) {
	p.publish(ctx, Event{
		Type:       TypeRequestStatusChanged,
		Entity:     entity,
		EntityID:   id,
		Status:     status,
		OccurredAt: timezone.Now(),
	})
}

func (p *publisherImpl) publish(ctx context.Context, event Event) {
	message := kafka.Message{
		Key:   event.Entity,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.Topic, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Int64("entityId", event.EntityID).Msg("failed to publish lifecycle event")
	}
}

type noopPublisher struct{}

func (n *noopPublisher) RequestSubmitted(_ context.Context, _ string, _ int64) {}

func (n *noopPublisher) StatusChanged(_ context.Context, _ string, _ int64, _ request.Status) {}

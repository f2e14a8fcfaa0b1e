package usecase

import (
	"context"
	"time"

	"airport-booking/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogCache is the read-through store for reference lists.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// EventPublisher delivers order events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// Infra bundles the optional collaborators of the services.
// Nil members are replaced by no-op implementations.
type Infra struct {
	Cache     CatalogCache
	Publisher EventPublisher
	Metrics   metrics.Booking
}

func (i Infra) withDefaults() Infra {
	if i.Cache == nil {
		i.Cache = nopCache{}
	}
	if i.Publisher == nil {
		i.Publisher = nopPublisher{}
	}
	if i.Metrics == nil {
		i.Metrics = nopMetrics{}
	}
	return i
}

const (
	EventOrderCreated   = "order_created"
	EventOrderCancelled = "order_cancelled"
)

type OrderEvent struct {
	EventID    uuid.UUID          `json:"event_id"`
	Type       string             `json:"type"`
	OrderID    int64              `json:"order_id"`
	UserID     uuid.UUID          `json:"user_id"`
	Tickets    []OrderEventTicket `json:"tickets,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

type OrderEventTicket struct {
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

// cachedList returns the list stored at key, loading and storing it on a miss.
// Cache failures are logged and never fail the read.
func cachedList[T any](ctx context.Context, cache CatalogCache, log *zap.Logger, key string, load func() ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		log.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
	} else if hit {
		return cached, nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, key, items); err != nil {
		log.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}

func invalidate(ctx context.Context, cache CatalogCache, log *zap.Logger, keys ...string) {
	if err := cache.Delete(ctx, keys...); err != nil {
		log.Warn("Catalog cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

type nopCache struct{}

func (nopCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) SetJSON(context.Context, string, any) error         { return nil }
func (nopCache) Delete(context.Context, ...string) error            { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

type nopMetrics struct{}

func (nopMetrics) OrderCreated(int) {}
func (nopMetrics) TicketBooked()    {}
func (nopMetrics) SeatConflict()    {}

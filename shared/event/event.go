package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"hotel/infras/kafka"
	"hotel/infras/prometheus"
	"hotel/shared/logger"
	"sync"
	"time"
)

const publishTimeout = 10 * time.Second

// Emitter publishes domain events after a write has committed. Emit never
// blocks the caller and never fails the write that produced the event.
type Emitter interface {
	Emit(ctx context.Context, topic, key string, payload any)
	Close() error
}

type emitterImpl struct {
	publisher kafka.Publisher
	metrics   *prometheus.Metrics
	inflight  sync.WaitGroup
}

func NewEmitter(publisher kafka.Publisher, metrics *prometheus.Metrics) Emitter {
	return &emitterImpl{
		publisher: publisher,
		metrics:   metrics,
	}
}

func (e *emitterImpl) Emit(ctx context.Context, topic, key string, payload any) {
	e.inflight.Add(1)

	go func() {
		defer e.inflight.Done()

		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		err := e.publisher.SendMessages(c, topic, kafka.Message{Key: key, Value: payload})
		if err != nil {
			e.metrics.IncEvent(topic, prometheus.EventOutcomeFailed)
			logger.FromContext(ctx).Warn().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish domain event")

			return
		}

		e.metrics.IncEvent(topic, prometheus.EventOutcomeSent)
	}()
}

// Close waits for in-flight events and closes the underlying publisher.
func (e *emitterImpl) Close() error {
	e.inflight.Wait()

	return e.publisher.Close() //nolint:wrapcheck
}

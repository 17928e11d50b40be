package event_test

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/prometheus"
	"hotel/shared/event"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmitter(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "published"},
		{name: "broker unavailable", sendErr: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			publisher := kafkaMocks.NewMockPublisher(ctrl)
			publisher.EXPECT().
				SendMessages(gomock.Any(), "hotel.room.created", kafka.Message{Key: "101", Value: "payload"}).
				Return(tt.sendErr)
			publisher.EXPECT().Close().Return(nil)

			ctx, cancel := context.WithCancel(context.Background())
			emitter := event.NewEmitter(publisher, prometheus.New(&config.Config{}))

			emitter.Emit(ctx, "hotel.room.created", "101", "payload")
			cancel()

			assert.NoError(t, emitter.Close())
		})
	}
}

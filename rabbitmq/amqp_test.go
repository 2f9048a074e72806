package rabbitmq

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestPublishWhileReconnectingHonoursContext(t *testing.T) {
	client := &defaultAMQPCLient{}
	client.reconFlag.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := client.PublishWithContext(ctx, "eventos", "evento.created", false, false, amqp.Publishing{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestPublishAfterReconnectGaveUp(t *testing.T) {
	client := &defaultAMQPCLient{}
	client.lostFlag.Store(true)

	start := time.Now()
	err := client.PublishWithContext(context.Background(), "eventos", "evento.created", false, false, amqp.Publishing{})
	assert.ErrorIs(t, err, ErrConnectionLost)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPublishStopsWaitingWhenReconnectGivesUp(t *testing.T) {
	client := &defaultAMQPCLient{}
	client.reconFlag.Store(true)

	go func() {
		time.Sleep(50 * time.Millisecond)
		client.lostFlag.Store(true)
		client.reconFlag.Store(false)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := client.PublishWithContext(ctx, "eventos", "evento.created", false, false, amqp.Publishing{})
	assert.ErrorIs(t, err, ErrConnectionLost)
	assert.NoError(t, ctx.Err())
}

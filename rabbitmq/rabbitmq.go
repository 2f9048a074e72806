package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/uepb/eventos.go/db/models"
	"github.com/ziflex/lecho/v3"
)

// bufPool lets concurrent requests reuse encoding buffers instead of
// allocating one per notification.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON  = "application/json"
	routingKeyPrefix = "evento."
)

//go:generate mockgen -destination=./mock_rabbitmq/rabbitmq.go github.com/uepb/eventos.go/rabbitmq AMQPClient

type Client interface {
	PublishEventChange(ctx context.Context, action string, event *models.Event) error
	// Close will close all connections to rabbitmq
	Close() error
}

type DefaultClient struct {
	amqpClient AMQPClient

	logger *lecho.Logger

	eventExchange string
}

// EventChange is the message body published for every write.
type EventChange struct {
	Action    string        `json:"action"`
	Event     *models.Event `json:"event"`
	Timestamp time.Time     `json:"timestamp"`
}

type ClientOption = func(client *DefaultClient)

func WithEventExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.eventExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

// NewClient declares the event exchange and returns a publisher on top of amqpClient.
func NewClient(amqpClient AMQPClient, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		amqpClient: amqpClient,

		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),

		eventExchange: "eventos",
	}

	for _, opt := range options {
		opt(client)
	}

	err := client.amqpClient.ExchangeDeclare(
		client.eventExchange,
		// topic is a type of exchange that allows routing messages to different queue's bases on a routing key
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created succesfully
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", client.eventExchange, err)
	}

	return client, nil
}

func (client *DefaultClient) Close() error { return client.amqpClient.Close() }

func RoutingKey(action string) string {
	return routingKeyPrefix + action
}

func (client *DefaultClient) PublishEventChange(ctx context.Context, action string, event *models.Event) error {
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	err := json.NewEncoder(buf).Encode(&EventChange{
		Action:    action,
		Event:     event,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = client.amqpClient.PublishWithContext(ctx,
		client.eventExchange,
		RoutingKey(action),
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        buf.Bytes(),
		},
	)
	if err != nil {
		return err
	}

	client.logger.Debugf("Published event %s notification id:%d", action, event.ID)
	return nil
}

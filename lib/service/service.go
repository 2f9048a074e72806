package service

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/uepb/eventos.go/db/models"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

const defaultNotifyTimeout = 2 * time.Second

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventNotifier is told about every successful write.
type EventNotifier interface {
	PublishEventChange(ctx context.Context, action string, event *models.Event) error
}

type EventService struct {
	Config   *Config
	DB       *bun.DB
	Logger   *lecho.Logger
	Notifier EventNotifier
}

// withConn runs fn on a connection taken from the pool for the duration of
// the call. The connection goes back to the pool on every return path.
func (svc *EventService) withConn(ctx context.Context, fn func(ctx context.Context, conn bun.Conn) error) error {
	if svc.Config != nil && svc.Config.DatabaseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(svc.Config.DatabaseTimeout)*time.Second)
		defer cancel()
	}

	conn, err := svc.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire store connection: %w", err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

func (svc *EventService) Ping(ctx context.Context) error {
	return svc.withConn(ctx, func(ctx context.Context, conn bun.Conn) error {
		return conn.PingContext(ctx)
	})
}

// notify never fails the request: the write is already committed. Publishing
// is bounded by RABBITMQ_PUBLISH_TIMEOUT so a stalled broker cannot hold the
// response.
func (svc *EventService) notify(ctx context.Context, action string, event *models.Event) {
	if svc.Notifier == nil {
		return
	}
	timeout := defaultNotifyTimeout
	if svc.Config != nil && svc.Config.RabbitMQPublishTimeout > 0 {
		timeout = svc.Config.RabbitMQPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := svc.Notifier.PublishEventChange(ctx, action, event); err != nil {
		if svc.Logger != nil {
			svc.Logger.Errorf("Failed to publish event %s notification id:%d: %v", action, event.ID, err)
		}
		sentry.CaptureException(err)
	}
}

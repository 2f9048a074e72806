package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/uepb/eventos.go/db/models"
	"github.com/uptrace/bun"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrIncompleteEvent = errors.New("event payload is missing required fields")
)

// EventInput carries the four writable fields. A nil field means the key was
// absent from the request.
type EventInput struct {
	Name        *string
	Date        *string
	Location    *string
	Description *string
}

func (in EventInput) Complete() bool {
	return in.Name != nil && in.Date != nil && in.Location != nil && in.Description != nil
}

func (in EventInput) toModel(id int64) *models.Event {
	return &models.Event{
		ID:          id,
		Name:        *in.Name,
		Date:        *in.Date,
		Location:    *in.Location,
		Description: *in.Description,
	}
}

// ListEvents returns every event ordered by date. Dates are text, so the order
// is lexical.
func (svc *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	err := svc.withConn(ctx, func(ctx context.Context, conn bun.Conn) error {
		return conn.NewSelect().
			Model(&events).
			Order("date ASC", "id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (svc *EventService) CreateEvent(ctx context.Context, in EventInput) (*models.Event, error) {
	if !in.Complete() {
		return nil, ErrIncompleteEvent
	}
	event := in.toModel(0)
	err := svc.withConn(ctx, func(ctx context.Context, conn bun.Conn) error {
		_, err := conn.NewInsert().Model(event).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	svc.notify(ctx, ActionCreated, event)
	return event, nil
}

// UpdateEvent overwrites all four fields of the event with the given id. The
// statement runs first and the affected row count decides ErrEventNotFound.
// The returned event echoes the input, it is not read back from the store.
func (svc *EventService) UpdateEvent(ctx context.Context, id int64, in EventInput) (*models.Event, error) {
	if !in.Complete() {
		return nil, fmt.Errorf("malformed update for event %d: %w", id, ErrIncompleteEvent)
	}
	event := in.toModel(id)
	var affected int64
	err := svc.withConn(ctx, func(ctx context.Context, conn bun.Conn) error {
		res, err := conn.NewUpdate().
			Model(event).
			Column("name", "date", "location", "description").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrEventNotFound
	}
	svc.notify(ctx, ActionUpdated, event)
	return event, nil
}

func (svc *EventService) DeleteEvent(ctx context.Context, id int64) error {
	var affected int64
	err := svc.withConn(ctx, func(ctx context.Context, conn bun.Conn) error {
		res, err := conn.NewDelete().
			Model((*models.Event)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	svc.notify(ctx, ActionDeleted, &models.Event{ID: id})
	return nil
}

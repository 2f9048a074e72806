package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/uepb/eventos.go/db/models"
	"github.com/uepb/eventos.go/rabbitmq"
	"github.com/uepb/eventos.go/rabbitmq/mock_rabbitmq"
)

func TestNewClientDeclaresExchange(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare(gomock.Eq("test_eventos"), gomock.Eq("topic"), true, false, false, false, gomock.Any()).
		Times(1).
		Return(nil)

	_, err := rabbitmq.NewClient(amqpClient, rabbitmq.WithEventExchange("test_eventos"))
	assert.NoError(t, err)
}

func TestNewClientExchangeDeclareFails(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("channel closed"))

	client, err := rabbitmq.NewClient(amqpClient)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestPublishEventChange(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	event := &models.Event{
		ID:          7,
		Name:        "Hackathon",
		Date:        "2024-12-01",
		Location:    "Ginásio",
		Description: "",
	}

	var published rabbitmq.EventChange
	amqpClient.EXPECT().
		PublishWithContext(gomock.Any(), gomock.Eq("eventos"), gomock.Eq("evento.created"), false, false, gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
			assert.Equal(t, "application/json", msg.ContentType)
			return json.Unmarshal(msg.Body, &published)
		})

	client, err := rabbitmq.NewClient(amqpClient)
	assert.NoError(t, err)

	err = client.PublishEventChange(context.Background(), "created", event)
	assert.NoError(t, err)
	assert.Equal(t, "created", published.Action)
	assert.Equal(t, event, published.Event)
	assert.False(t, published.Timestamp.IsZero())
}

func TestPublishEventChangeError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	amqpClient.EXPECT().
		PublishWithContext(gomock.Any(), gomock.Any(), gomock.Eq("evento.deleted"), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rabbitmq.ErrReconnecting)

	client, err := rabbitmq.NewClient(amqpClient)
	assert.NoError(t, err)

	err = client.PublishEventChange(context.Background(), "deleted", &models.Event{ID: 3})
	assert.ErrorIs(t, err, rabbitmq.ErrReconnecting)
}

//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"media_explorer/internal/source/nasa"
	"media_explorer/internal/state"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishImageItems() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-items",
		RoutingKey: "test-routing-key-items",
		QueueName:  "test-queue-items",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	items := []nasa.ImageItem{
		{
			Href:  "https://images-assets.nasa.gov/image/PIA1/collection.json",
			Data:  []nasa.ImageItemData{{Title: "Crab", NasaID: "PIA1"}},
			Links: []nasa.ImageItemLink{{Href: "https://images-assets.nasa.gov/image/PIA1/PIA1~thumb.jpg"}},
		},
	}

	err = pub.Publish(s.ctx, ContainerImageItems, items)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(ContainerImageItems, msg.Type)

	var received StateMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(ContainerImageItems, received.Container)
	s.Equal(msg.MessageId, received.ID)
	s.False(received.Timestamp.IsZero())

	var value []nasa.ImageItem
	s.NoError(json.Unmarshal(received.Value, &value))
	s.Equal(items, value)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_BridgeStore() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-bridge",
		RoutingKey: "test-routing-key-bridge",
		QueueName:  "test-queue-bridge",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	store := state.NewStore()
	detach := Bridge(s.ctx, store, pub, s.logger)
	defer detach()

	height := 480
	store.MainContainerHeight.Set(&height)

	msgs := s.consumeMessages(cfg, 5)
	s.Require().Len(msgs, 5)

	containers := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		containers = append(containers, msg.Type)
	}

	s.Equal([]string{
		ContainerImageItems,
		ContainerSelectedImage,
		ContainerMainContainerWidth,
		ContainerMainContainerHeight,
		ContainerMainContainerHeight,
	}, containers)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.Publish(s.ctx, ContainerSelectedImage, &nasa.ImageItem{Href: "https://example.com/persist"})
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	msgs := s.consumeMessages(cfg, 1)
	if len(msgs) == 0 {
		return nil
	}
	return &msgs[0]
}

// consumeMessages reads n messages over a single consumer so that none are
// acked and lost between reads.
func (s *RabbitMQIntegrationSuite) consumeMessages(cfg Config, n int) []amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	received := make([]amqp.Delivery, 0, n)
	for len(received) < n {
		select {
		case msg := <-msgs:
			received = append(received, msg)
		case <-time.After(5 * time.Second):
			s.Fail("Timeout waiting for message")
			return received
		}
	}
	return received
}

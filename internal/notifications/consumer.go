package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"travely/pkg/logger"
)

// KafkaConsumerConfig contains configuration for the booking event consumer
type KafkaConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// KafkaConsumer consumes booking confirmations and acknowledges them. There
// is no email delivery here; the consumer records each confirmation so
// downstream tooling can tail the log.
type KafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *KafkaConsumerConfig
	log           *logger.Logger
	cancel        context.CancelFunc
}

// NewKafkaConsumer creates a consumer group member for booking events
func NewKafkaConsumer(config *KafkaConsumerConfig, log *logger.Logger) (*KafkaConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Return.Errors = true

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &KafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		log:           log,
	}, nil
}

// Start runs the consume loop until the context is cancelled.
func (c *KafkaConsumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.WithError(err).Warn("kafka consumer error")
		}
	}()

	go func() {
		handler := &bookingEventHandler{log: c.log}
		for {
			select {
			case <-ctx.Done():
				c.log.Info("booking event consumer shutting down")
				return
			default:
				err := c.consumerGroup.Consume(ctx, []string{c.config.Topic}, handler)
				if err != nil {
					c.log.WithError(err).Warn("kafka consume failed, retrying")
				}
			}
		}
	}()

	c.log.Info("booking event consumer started", "topic", c.config.Topic, "group", c.config.GroupID)
}

func (c *KafkaConsumer) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

type bookingEventHandler struct {
	log *logger.Logger
}

func (h *bookingEventHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *bookingEventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *bookingEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			var event BookingNotification
			if err := json.Unmarshal(message.Value, &event); err != nil {
				h.log.WithError(err).Warn("failed to unmarshal booking event, skipping")
				session.MarkMessage(message, "")
				continue
			}

			h.log.Info("booking confirmed",
				"booking_ref", event.BookingRef,
				"username", event.Username,
				"route_id", event.RouteID,
				"price_paid", event.PricePaid,
			)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

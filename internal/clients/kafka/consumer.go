package kafka

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Shopify/sarama"

	"dhaqaaleeye/finance-bot/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

// Processor handles one raw message. Payloads are JSON; decoding failures
// are the processor's problem so the consumer can keep the partition moving.
type Processor interface {
	Process(ctx context.Context, message []byte)
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	processor     Processor
}

func NewConsumer(cfg consumerConfig, topic string, processor Processor) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         topic,
		processor:     processor,
	}, err
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.processor.Process(session.Context(), message.Value)
		session.MarkMessage(message, "")
	}
	return nil
}

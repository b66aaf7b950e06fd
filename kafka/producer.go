package kafka

import (
	"context"
	"encoding/json"

	"ecommerce-api/common/logger"
	"ecommerce-api/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ProducerAPI is the publishing surface consumed by services.
type ProducerAPI interface {
	PublishOrderPlaced(ctx context.Context, evt models.OrderPlacedEvent) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	logger.Info("Kafka producer initialized",
		zap.String("topic", topic),
		zap.Strings("brokers", brokers),
	)
	return &Producer{writer: w, topic: topic}
}

// PublishOrderPlaced emits an order.placed event keyed by order id.
func (p *Producer) PublishOrderPlaced(ctx context.Context, evt models.OrderPlacedEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error("Failed to publish order.placed", err,
			zap.String("order_id", evt.OrderID),
			zap.String("topic", p.topic),
		)
		return err
	}
	logger.Info("order.placed published",
		zap.String("order_id", evt.OrderID),
		zap.String("topic", p.topic),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"airport-booking/pkg/utils"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer writes JSON messages to a single Kafka topic.
type Producer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewProducer(cfg utils.KafkaConfig, log *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		log:    log.With(zap.String("component", "kafka_producer"), zap.String("topic", cfg.OrderTopic)),
	}
}

// Publish sends payload keyed by key; messages with the same key keep their order.
func (p *Producer) Publish(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}

	p.log.Debug("Message published", zap.String("key", key))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

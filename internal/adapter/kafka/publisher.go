package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/polkiloo/printshop/internal/domain/model"
)

// Publisher delivers order status changes to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, change model.StatusChange) error
	Close() error
}

var newSyncProducer = func(brokers []string, cfg *sarama.Config) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(brokers, cfg)
}

// SaramaPublisher implements Publisher on top of a Kafka sync producer.
type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducerConfig returns the producer settings used for status events.
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "printshop"
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Timeout = 5 * time.Second
	return cfg
}

// NewSaramaPublisher connects to the brokers and publishes into topic.
func NewSaramaPublisher(brokers []string, topic string, logger *slog.Logger) (*SaramaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is empty")
	}
	producer, err := newSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return newPublisherWithProducer(producer, topic, logger), nil
}

func newPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *SaramaPublisher {
	return &SaramaPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish sends the change keyed by order number so events of one order stay ordered.
func (p *SaramaPublisher) Publish(ctx context.Context, change model.StatusChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode status change: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(change.OrderNumber),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(change.EventID)},
			{Key: []byte("status"), Value: []byte(change.To)},
		},
		Timestamp: change.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send status change: %w", err)
	}
	p.logger.Debug("status change published",
		slog.String("topic", p.topic),
		slog.String("order", change.OrderNumber),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *SaramaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops every change. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.StatusChange) error { return nil }
func (NopPublisher) Close() error                                      { return nil }

package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"atm-ledger/internal/interfaces"
)

// Publisher writes domain events to Kafka as JSON. The writer carries no
// fixed topic; each message is routed to the topic passed to Publish.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(
		context.Background(),
		kafka.Message{
			Topic: topic,
			Value: data,
		},
	)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Compile-time check: ensure Publisher implements EventPublisher
var _ interfaces.EventPublisher = (*Publisher)(nil)

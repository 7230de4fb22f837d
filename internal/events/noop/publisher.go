package noop

import "atm-ledger/internal/interfaces"

// Publisher discards every event. It is the default sink when no broker is
// configured, which is the normal mode for an offline simulation.
type Publisher struct{}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (*Publisher) Publish(topic string, event any) error {
	return nil
}

func (*Publisher) Close() error {
	return nil
}

// Compile-time check: ensure Publisher implements EventPublisher
var _ interfaces.EventPublisher = (*Publisher)(nil)

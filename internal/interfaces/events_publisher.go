package interfaces

// EventPublisher delivers domain events to an external sink. Delivery is
// best-effort: the ledger entry an event describes is already final by the
// time Publish runs.
type EventPublisher interface {
	Publish(topic string, event any) error
	Close() error
}

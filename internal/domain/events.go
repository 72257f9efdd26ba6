package domain

type Message struct {
	Key   []byte
	Value []byte
}

// PublisherPort emits catalog events to the message broker. A nil publisher
// is allowed; event emission is best-effort and never fails an operation.
type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

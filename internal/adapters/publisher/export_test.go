package publisher

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageWriter mirrors messageWriter for tests.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWithWriter exposes newKafkaWithWriter for tests.
func NewKafkaWithWriter(writer MessageWriter, topic string, newID func() string) *Kafka {
	k := newKafkaWithWriter(writer, topic)
	k.newID = newID
	return k
}

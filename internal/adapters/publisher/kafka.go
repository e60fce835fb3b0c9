// Package publisher announces refreshed calendars to other services.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"go.trai.ch/zerr"
)

// Header keys set on every event.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// Source identifies this service in event headers.
const Source = "workday"

const (
	maxAttempts  = 3
	batchTimeout = 10 * time.Millisecond
)

var _ ports.EventPublisher = (*Kafka)(nil)

// messageWriter is the subset of *kafka.Writer used by Kafka.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes refresh events to a Kafka topic, keyed by year.
type Kafka struct {
	writer messageWriter
	topic  string
	newID  func() string

	mu     sync.RWMutex
	closed bool
}

// NewKafka creates a publisher writing to topic on brokers.
func NewKafka(brokers []string, topic string, logger ports.Logger) *Kafka {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  compress.Snappy,
		MaxAttempts:  maxAttempts,
		BatchTimeout: batchTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Warn("kafka writer: "+fmt.Sprintf(msg, args...), "topic", topic)
		}),
	}
	return newKafkaWithWriter(writer, topic)
}

func newKafkaWithWriter(writer messageWriter, topic string) *Kafka {
	return &Kafka{
		writer: writer,
		topic:  topic,
		newID:  uuid.NewString,
	}
}

// Publish writes event synchronously. A missing EventID is generated.
func (k *Kafka) Publish(ctx context.Context, event domain.RefreshEvent) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.closed {
		return zerr.With(zerr.Wrap(domain.ErrPublishFailed, "publisher closed"), "topic", k.topic)
	}

	msg, err := k.buildMessage(event)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "topic", k.topic)
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "topic", k.topic)
	}
	return nil
}

func (k *Kafka) buildMessage(event domain.RefreshEvent) (kafka.Message, error) {
	if event.EventID == "" {
		event.EventID = k.newID()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strconv.Itoa(event.Year)),
		Value: value,
		Time:  event.RefreshedAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(domain.RefreshEventType)},
			{Key: HeaderSource, Value: []byte(Source)},
		},
	}, nil
}

// Close flushes pending writes and closes the writer. Later calls are no-ops.
func (k *Kafka) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil
	}
	k.closed = true
	return k.writer.Close()
}

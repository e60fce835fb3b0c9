package domain

import "time"

// Settings is the resolved runtime configuration of the service.
type Settings struct {
	DataPath        string
	SourceURL       string
	FetchTimeout    time.Duration
	LockTimeout     time.Duration
	Schedule        string
	Location        *time.Location
	ListenAddr      string
	DebounceWindow  time.Duration
	ShutdownTimeout time.Duration
	LogFormat       string
	Kafka           KafkaSettings
}

// KafkaSettings configures the optional refresh event publisher.
type KafkaSettings struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether events should be published.
func (k KafkaSettings) Enabled() bool {
	return len(k.Brokers) > 0
}

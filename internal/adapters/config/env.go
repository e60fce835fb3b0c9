package config

import (
	"os"
	"strings"
)

// Environment variables overriding the configuration file.
const (
	EnvConfigPath      = "WORKDAY_CONFIG"
	EnvDataPath        = "WORKDAY_DATA_PATH"
	EnvSourceURL       = "WORKDAY_SOURCE_URL"
	EnvFetchTimeout    = "WORKDAY_FETCH_TIMEOUT"
	EnvLockTimeout     = "WORKDAY_LOCK_TIMEOUT"
	EnvSchedule        = "WORKDAY_SCHEDULE"
	EnvTimezone        = "WORKDAY_TIMEZONE"
	EnvListenAddr      = "WORKDAY_LISTEN_ADDR"
	EnvDebounceWindow  = "WORKDAY_DEBOUNCE_WINDOW"
	EnvShutdownTimeout = "WORKDAY_SHUTDOWN_TIMEOUT"
	EnvLogFormat       = "WORKDAY_LOG_FORMAT"
	EnvKafkaBrokers    = "WORKDAY_KAFKA_BROKERS"
	EnvKafkaTopic      = "WORKDAY_KAFKA_TOPIC"
)

// Defaults.
const (
	DefaultDataPath        = "data.json"
	DefaultSourceURL       = "https://raw.githubusercontent.com/NateScarlet/holiday-cn/master/%d.json"
	DefaultFetchTimeout    = "5s"
	DefaultLockTimeout     = "30s"
	DefaultSchedule        = "0 10 * * *"
	DefaultTimezone        = "Local"
	DefaultListenAddr      = ":8080"
	DefaultDebounceWindow  = "50ms"
	DefaultShutdownTimeout = "10s"
	DefaultLogFormat       = "pretty"
	DefaultKafkaTopic      = "workday.calendar.refreshed"
)

func defaults() fileSchema {
	return fileSchema{
		DataPath:        DefaultDataPath,
		SourceURL:       DefaultSourceURL,
		FetchTimeout:    DefaultFetchTimeout,
		LockTimeout:     DefaultLockTimeout,
		Schedule:        DefaultSchedule,
		Timezone:        DefaultTimezone,
		ListenAddr:      DefaultListenAddr,
		DebounceWindow:  DefaultDebounceWindow,
		ShutdownTimeout: DefaultShutdownTimeout,
		LogFormat:       DefaultLogFormat,
		Kafka: kafkaSchema{
			Topic: DefaultKafkaTopic,
		},
	}
}

// applyEnv overrides s with every WORKDAY_* variable that is set.
func applyEnv(s *fileSchema) {
	s.DataPath = getEnvStr(EnvDataPath, s.DataPath)
	s.SourceURL = getEnvStr(EnvSourceURL, s.SourceURL)
	s.FetchTimeout = getEnvStr(EnvFetchTimeout, s.FetchTimeout)
	s.LockTimeout = getEnvStr(EnvLockTimeout, s.LockTimeout)
	s.Schedule = getEnvStr(EnvSchedule, s.Schedule)
	s.Timezone = getEnvStr(EnvTimezone, s.Timezone)
	s.ListenAddr = getEnvStr(EnvListenAddr, s.ListenAddr)
	s.DebounceWindow = getEnvStr(EnvDebounceWindow, s.DebounceWindow)
	s.ShutdownTimeout = getEnvStr(EnvShutdownTimeout, s.ShutdownTimeout)
	s.LogFormat = getEnvStr(EnvLogFormat, s.LogFormat)
	s.Kafka.Brokers = getEnvList(EnvKafkaBrokers, s.Kafka.Brokers)
	s.Kafka.Topic = getEnvStr(EnvKafkaTopic, s.Kafka.Topic)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

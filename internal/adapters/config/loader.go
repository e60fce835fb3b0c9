// Package config loads workday settings from workday.yaml and WORKDAY_* variables.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/karbobc/workday/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	path     string
	validate *validator.Validate
}

// New creates a Loader reading the file at path.
// An empty path falls back to $WORKDAY_CONFIG, then to workday.yaml.
func New(path string) *Loader {
	if path == "" {
		path = getEnvStr(EnvConfigPath, domain.ConfigFileName)
	}
	return &Loader{path: path, validate: newValidator()}
}

// Path returns the configuration file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the configuration file, applies environment overrides and validates the result.
// A missing file is not an error; defaults and environment values are used instead.
func (l *Loader) Load() (*domain.Settings, error) {
	schema := defaults()

	data, err := os.ReadFile(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.path)
	default:
		if err := decode(data, &schema); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", l.path)
		}
	}

	applyEnv(&schema)

	if err := validateSchema(l.validate, &schema); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", l.path)
	}
	return toSettings(&schema)
}

func decode(data []byte, schema *fileSchema) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(schema); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func toSettings(s *fileSchema) (*domain.Settings, error) {
	loc, err := loadLocation(s.Timezone)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "timezone", s.Timezone)
	}
	brokers := make([]string, 0, len(s.Kafka.Brokers))
	for _, broker := range s.Kafka.Brokers {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return &domain.Settings{
		DataPath:        s.DataPath,
		SourceURL:       s.SourceURL,
		FetchTimeout:    mustDuration(s.FetchTimeout),
		LockTimeout:     mustDuration(s.LockTimeout),
		Schedule:        s.Schedule,
		Location:        loc,
		ListenAddr:      s.ListenAddr,
		DebounceWindow:  mustDuration(s.DebounceWindow),
		ShutdownTimeout: mustDuration(s.ShutdownTimeout),
		LogFormat:       s.LogFormat,
		Kafka: domain.KafkaSettings{
			Brokers: brokers,
			Topic:   s.Kafka.Topic,
		},
	}, nil
}

// mustDuration parses a duration already accepted by the "duration" validation.
func mustDuration(value string) time.Duration {
	d, _ := time.ParseDuration(value)
	return d
}

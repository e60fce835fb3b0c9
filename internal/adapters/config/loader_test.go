package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	loader := config.New(filepath.Join(t.TempDir(), "missing.yaml"))

	settings, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDataPath, settings.DataPath)
	assert.Equal(t, config.DefaultSourceURL, settings.SourceURL)
	assert.Equal(t, 5*time.Second, settings.FetchTimeout)
	assert.Equal(t, 30*time.Second, settings.LockTimeout)
	assert.Equal(t, config.DefaultSchedule, settings.Schedule)
	assert.Equal(t, time.Local, settings.Location)
	assert.Equal(t, ":8080", settings.ListenAddr)
	assert.Equal(t, 50*time.Millisecond, settings.DebounceWindow)
	assert.Equal(t, 10*time.Second, settings.ShutdownTimeout)
	assert.Equal(t, "pretty", settings.LogFormat)
	assert.False(t, settings.Kafka.Enabled())
	assert.Equal(t, config.DefaultKafkaTopic, settings.Kafka.Topic)
}

func TestLoader_Load_File(t *testing.T) {
	path := writeConfig(t, `
dataPath: /var/lib/workday/data.json
sourceURL: http://holidays.internal/%d.json
fetchTimeout: 2s
lockTimeout: 1m
schedule: "30 9 * * 1-5"
timezone: Asia/Shanghai
listenAddr: 127.0.0.1:9000
debounceWindow: 100ms
shutdownTimeout: 3s
logFormat: json
kafka:
  brokers: ["kafka-1:9092", "kafka-2:9092"]
  topic: calendar-events
`)

	settings, err := config.New(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/workday/data.json", settings.DataPath)
	assert.Equal(t, "http://holidays.internal/%d.json", settings.SourceURL)
	assert.Equal(t, 2*time.Second, settings.FetchTimeout)
	assert.Equal(t, time.Minute, settings.LockTimeout)
	assert.Equal(t, "30 9 * * 1-5", settings.Schedule)
	assert.Equal(t, "Asia/Shanghai", settings.Location.String())
	assert.Equal(t, "127.0.0.1:9000", settings.ListenAddr)
	assert.Equal(t, 100*time.Millisecond, settings.DebounceWindow)
	assert.Equal(t, 3*time.Second, settings.ShutdownTimeout)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, settings.Kafka.Brokers)
	assert.Equal(t, "calendar-events", settings.Kafka.Topic)
	assert.True(t, settings.Kafka.Enabled())
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	settings, err := config.New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDataPath, settings.DataPath)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
dataPath: from-file.json
logFormat: json
`)
	t.Setenv(config.EnvDataPath, "from-env.json")
	t.Setenv(config.EnvLockTimeout, "45s")
	t.Setenv(config.EnvKafkaBrokers, " broker-a:9092 , ,broker-b:9092")

	settings, err := config.New(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", settings.DataPath)
	assert.Equal(t, 45*time.Second, settings.LockTimeout)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, []string{"broker-a:9092", "broker-b:9092"}, settings.Kafka.Brokers)
}

func TestNew_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "dataPath: env-config.json\n")
	t.Setenv(config.EnvConfigPath, path)

	loader := config.New("")
	assert.Equal(t, path, loader.Path())

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-config.json", settings.DataPath)
}

func TestNew_DefaultPath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	assert.Equal(t, domain.ConfigFileName, config.New("").Path())
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains []string
	}{
		{
			name:        "malformed yaml",
			content:     "dataPath: [unclosed\n",
			errContains: []string{domain.ErrConfigParseFailed.Error()},
		},
		{
			name:        "unknown field",
			content:     "dataPth: typo.json\n",
			errContains: []string{domain.ErrConfigParseFailed.Error(), "dataPth"},
		},
		{
			name:        "invalid duration",
			content:     "fetchTimeout: soon\n",
			errContains: []string{domain.ErrConfigInvalid.Error(), "fetchTimeout must be a positive duration"},
		},
		{
			name:        "negative duration",
			content:     "lockTimeout: -1s\n",
			errContains: []string{"lockTimeout must be a positive duration"},
		},
		{
			name:        "invalid cron",
			content:     "schedule: every day\n",
			errContains: []string{"schedule must be a standard cron expression"},
		},
		{
			name:        "invalid timezone",
			content:     "timezone: Mars/Olympus\n",
			errContains: []string{"timezone must be an IANA time zone"},
		},
		{
			name:        "source without placeholder",
			content:     "sourceURL: https://example.com/2024.json\n",
			errContains: []string{"sourceURL must be an http(s) URL"},
		},
		{
			name:        "source not http",
			content:     "sourceURL: ftp://example.com/%d.json\n",
			errContains: []string{"sourceURL must be an http(s) URL"},
		},
		{
			name:        "bad listen addr",
			content:     "listenAddr: localhost\n",
			errContains: []string{"listenAddr must be a host:port address"},
		},
		{
			name:        "bad log format",
			content:     "logFormat: xml\n",
			errContains: []string{"logFormat must be one of [pretty json]"},
		},
		{
			name:        "empty data path",
			content:     "dataPath: \"\"\n",
			errContains: []string{"dataPath is required"},
		},
		{
			name: "kafka brokers without topic",
			content: `
kafka:
  brokers: ["kafka:9092"]
  topic: ""
`,
			errContains: []string{"kafka.topic is required when Brokers is set"},
		},
		{
			name:        "bad kafka broker",
			content:     "kafka:\n  brokers: [\"kafka\"]\n",
			errContains: []string{"kafka.brokers[0] must be a host:port address"},
		},
		{
			name: "multiple failures",
			content: `
fetchTimeout: 0s
debounceWindow: nope
`,
			errContains: []string{"fetchTimeout", "debounceWindow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			settings, err := config.New(path).Load()
			require.Error(t, err)
			for _, want := range tt.errContains {
				require.ErrorContains(t, err, want)
			}
			assert.Nil(t, settings)
		})
	}
}

func TestLoader_Load_ReadError(t *testing.T) {
	// A directory cannot be read as a file.
	settings, err := config.New(t.TempDir()).Load()
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	assert.Nil(t, settings)
}

// Helpers.

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

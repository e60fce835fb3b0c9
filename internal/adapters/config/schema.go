package config

// fileSchema is the on-disk representation of workday.yaml.
// Durations are Go duration strings ("5s", "1m30s").
type fileSchema struct {
	DataPath        string      `yaml:"dataPath" validate:"required"`
	SourceURL       string      `yaml:"sourceURL" validate:"required,yearpattern"`
	FetchTimeout    string      `yaml:"fetchTimeout" validate:"required,duration"`
	LockTimeout     string      `yaml:"lockTimeout" validate:"required,duration"`
	Schedule        string      `yaml:"schedule" validate:"required,cronspec"`
	Timezone        string      `yaml:"timezone" validate:"location"`
	ListenAddr      string      `yaml:"listenAddr" validate:"required,listenaddr"`
	DebounceWindow  string      `yaml:"debounceWindow" validate:"required,duration"`
	ShutdownTimeout string      `yaml:"shutdownTimeout" validate:"required,duration"`
	LogFormat       string      `yaml:"logFormat" validate:"oneof=pretty json"`
	Kafka           kafkaSchema `yaml:"kafka"`
}

type kafkaSchema struct {
	Brokers []string `yaml:"brokers" validate:"dive,listenaddr"`
	Topic   string   `yaml:"topic" validate:"required_with=Brokers"`
}

package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service     Service
	Postgres    Postgres
	Logger      Logger
	Metrics     Metrics
	Kafka       Kafka
	Platform    Platform
	Assistant   Assistant
	Attachments Attachments
	Auth        Auth
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"scio-planning"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"SCIO_PLANNING_POSTGRES_USER"`
	Password string `env:"SCIO_PLANNING_POSTGRES_PASSWORD"`
	Database string `env:"SCIO_PLANNING_POSTGRES_DB"`
	Host     string `env:"SCIO_PLANNING_POSTGRES_HOST"`
	Port     string `env:"SCIO_PLANNING_POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host          string `env:"KAFKA_HOST"`
	Port          string `env:"KAFKA_PORT"`
	ExchangeTopic string `env:"KAFKA_EXCHANGE_TOPIC" env-default:"scio.chat.exchange"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Assistant struct {
	BaseURL   string        `env:"ASSISTANT_BASE_URL" env-default:"http://localhost:8000"`
	Timeout   time.Duration `env:"ASSISTANT_TIMEOUT" env-default:"60s"`
	OpenAIKey string        `env:"OPENAI_API_KEY"`
	Model     string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

type Attachments struct {
	MaxCount   int      `env:"ATTACHMENTS_MAX_COUNT" env-default:"5"`
	MaxBytes   int64    `env:"ATTACHMENTS_MAX_BYTES" env-default:"10485760"`
	MediaTypes []string `env:"ATTACHMENTS_MEDIA_TYPES" env-default:"text/plain,text/markdown,application/pdf,image/png,image/jpeg"`
	Dir        string   `env:"ATTACHMENTS_DIR" env-default:""`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}

package service

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseUri             string        `envconfig:"DATABASE_URI" default:"eventos.db"`
	DatabaseMaxConns        int           `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int           `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int           `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	DatabaseTimeout         int           `envconfig:"DATABASE_TIMEOUT" default:"60"`             // 60 seconds
	SeedData                bool          `envconfig:"SEED_DATA" default:"true"`
	SentryDSN               string        `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64       `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	DatadogAgentUrl         string        `envconfig:"DATADOG_AGENT_URL"`
	LogFilePath             string        `envconfig:"LOG_FILE_PATH"`
	LogLevel                string        `envconfig:"LOG_LEVEL" default:"info"`
	Host                    string        `envconfig:"HOST" default:"localhost:5000"`
	Port                    int           `envconfig:"PORT" default:"5000"`
	DefaultRateLimit        int           `envconfig:"DEFAULT_RATE_LIMIT" default:"0"` // requests/second per IP, 0 disables the limiter
	BodyLimit               string        `envconfig:"BODY_LIMIT" default:"250K"`
	EnablePrometheus        bool          `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int           `envconfig:"PROMETHEUS_PORT" default:"9092"`
	RabbitMQUri             string        `envconfig:"RABBITMQ_URI"`
	RabbitMQEventExchange   string        `envconfig:"RABBITMQ_EVENT_EXCHANGE" default:"eventos"`
	RabbitMQPublishTimeout  time.Duration `envconfig:"RABBITMQ_PUBLISH_TIMEOUT" default:"2s"`
}

// LoadConfig reads an optional .env file and then the process environment.
// A missing .env file is reported through the returned bool, never as an error.
func LoadConfig(envFile string) (c *Config, envLoaded bool, err error) {
	c = &Config{}
	envLoaded = godotenv.Load(envFile) == nil
	if err := envconfig.Process("", c); err != nil {
		return nil, envLoaded, fmt.Errorf("error loading environment variables: %w", err)
	}
	return c, envLoaded, nil
}

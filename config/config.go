package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	HttpClient    HttpClientConfig
	MessageStream MessageStreamConfig
	Webhook       WebhookConfig
	Bokadirekt    BokadirektConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"HTTP_SERVER_PORT" default:"8080"`
}

type HttpClientConfig struct {
	// Type selects the breaker strategy: consecutive, threshold or rate.
	Type           string  `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Threshold      int64   `envconfig:"HTTP_CLIENT_BREAKER_THRESHOLD" default:"5"`
	Rate           float64 `envconfig:"HTTP_CLIENT_BREAKER_RATE" default:"0.95"`
	MinSamples     int64   `envconfig:"HTTP_CLIENT_BREAKER_MIN_SAMPLES" default:"100"`
	TimeoutSeconds int     `envconfig:"HTTP_CLIENT_TIMEOUT_SECONDS" default:"20"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type WebhookConfig struct {
	URL string `envconfig:"WEBHOOK_URL" default:"https://hook.eu2.make.com/e73ginw1b4moa9gypzuf8qwh4c29fo2x"`
}

type BokadirektConfig struct {
	BaseURL string `envconfig:"BOKADIREKT_BASE_URL" default:"https://external.api.portal.bokadirekt.se"`
	APIKey  string `envconfig:"BOKADIREKT_API_KEY"`
}

func InitConfig() *Config {
	// .env is optional, real deployments rely on the environment
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process config: %v", err)
	}

	return &cfg
}

package httpclient

import (
	"time"

	"booking-gateway/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, typeCircuitBreaker string) *circuit.Breaker {
	switch typeCircuitBreaker {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case "rate":
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	client := circuit.NewHTTPClient(timeout, cfg.Threshold, nil)
	client.BreakerLookup = func(c *circuit.HTTPClient, val interface{}) *circuit.Breaker {
		return cb
	}

	return client
}

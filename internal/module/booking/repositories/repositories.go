package repositories

import (
	"bytes"
	"context"
	"io"

	"booking-gateway/config"
	"booking-gateway/internal/pkg/bokadirekt"
	"booking-gateway/internal/pkg/errors"
	"booking-gateway/internal/pkg/log"
	"booking-gateway/internal/pkg/payload"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	log        log.Logger
	httpClient *circuit.HTTPClient
	cfgWebhook *config.WebhookConfig
	bokadirekt *bokadirekt.Client
}

type Repositories interface {
	// http
	ForwardBooking(ctx context.Context, booking payload.Payload) (int, interface{}, error)
	CreateUpstreamBooking(ctx context.Context, booking payload.Payload) (map[string]interface{}, error)
}

func New(log log.Logger, httpClient *circuit.HTTPClient, cfgWebhook *config.WebhookConfig, bokadirektClient *bokadirekt.Client) Repositories {
	return &repositories{
		log:        log,
		httpClient: httpClient,
		cfgWebhook: cfgWebhook,
		bokadirekt: bokadirektClient,
	}
}

// ForwardBooking posts the normalized booking to the downstream webhook
// and returns its status code and decoded body. The body falls back to
// {"raw": ...} when the webhook answers with something that is not JSON.
func (r *repositories) ForwardBooking(ctx context.Context, booking payload.Payload) (int, interface{}, error) {
	encoded, err := json.Marshal(booking)
	if err != nil {
		return 0, nil, errors.InternalServerError("error marshal booking payload")
	}

	resp, err := r.httpClient.Post(r.cfgWebhook.URL, "application/json", bytes.NewReader(encoded))
	if err != nil {
		r.log.Error(ctx, "error forward booking to webhook", err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.Error(ctx, "error read webhook response", err)
		return 0, nil, err
	}

	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		body = map[string]interface{}{"raw": string(raw)}
	}

	return resp.StatusCode, body, nil
}

// CreateUpstreamBooking mirrors a forwarded booking into Bokadirekt.
func (r *repositories) CreateUpstreamBooking(ctx context.Context, booking payload.Payload) (map[string]interface{}, error) {
	if r.bokadirekt == nil {
		return nil, errors.InternalServerError("bokadirekt client is not configured")
	}

	result, err := r.bokadirekt.CreateBooking(ctx, booking)
	if err != nil {
		r.log.Error(ctx, "error create upstream booking", err)
		return nil, err
	}

	return result, nil
}

package bokadirekt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

const DefaultBaseURL = "https://external.api.portal.bokadirekt.se"

// Client is a thin wrapper around the Bokadirekt public API. Responses
// are passed through as decoded JSON; non-2xx answers become errors
// carrying the upstream status and body.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *circuit.HTTPClient
}

// APIError is a non-2xx answer from Bokadirekt.
type APIError struct {
	Status int
	Body   interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed (%d): %v", e.Status, e.Body)
}

// New builds a client. The API key falls back to BOKADIREKT_API_KEY when
// not passed explicitly.
func New(baseURL, apiKey string, httpClient *circuit.HTTPClient) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("BOKADIREKT_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key not provided, set BOKADIREKT_API_KEY or pass it explicitly")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}, nil
}

func (c *Client) ListServices(ctx context.Context, companyID string) (map[string]interface{}, error) {
	return c.get(ctx, fmt.Sprintf("/company/%s/services", companyID), nil)
}

func (c *Client) ListStaff(ctx context.Context, companyID string) (map[string]interface{}, error) {
	return c.get(ctx, fmt.Sprintf("/company/%s/staff", companyID), nil)
}

func (c *Client) CheckAvailability(ctx context.Context, companyID, serviceID, fromDate, toDate, staffID string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("from", fromDate)
	params.Set("to", toDate)
	params.Set("serviceId", serviceID)
	if staffID != "" {
		params.Set("staffId", staffID)
	}
	return c.get(ctx, "/availability/"+companyID, params)
}

func (c *Client) CreateBooking(ctx context.Context, booking map[string]interface{}) (map[string]interface{}, error) {
	return c.post(ctx, "/booking", booking)
}

func (c *Client) CancelBooking(ctx context.Context, bookingID, reason string) (map[string]interface{}, error) {
	body := map[string]interface{}{"bookingId": bookingID}
	if reason != "" {
		body["reason"] = reason
	}
	return c.post(ctx, "/booking/cancel", body)
}

func (c *Client) RawGet(ctx context.Context, path string, params url.Values) (map[string]interface{}, error) {
	return c.get(ctx, path, params)
}

func (c *Client) RawPost(ctx context.Context, path string, body map[string]interface{}) (map[string]interface{}, error) {
	return c.post(ctx, path, body)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (map[string]interface{}, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	return c.send(req)
}

func (c *Client) post(ctx context.Context, path string, body map[string]interface{}) (map[string]interface{}, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}

	return c.send(req)
}

func (c *Client) send(req *http.Request) (map[string]interface{}, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	// integrations differ in which header they check, so send both
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body := decodeBody(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Body: body}
	}

	return body, nil
}

// decodeBody decodes a JSON object response, falling back to the raw
// text when the body is not an object.
func decodeBody(r io.Reader) map[string]interface{} {
	raw, err := io.ReadAll(r)
	if err != nil {
		return map[string]interface{}{"raw": ""}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]interface{}{"raw": string(raw)}
	}
	return decoded
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	"booking-gateway/config"
	"booking-gateway/internal/pkg/bokadirekt"
	"booking-gateway/internal/pkg/httpclient"

	"github.com/goccy/go-json"
)

const usage = `usage: bokadirekt [flags] <command> [args]

commands:
  services <company-id>                                 list services for a company
  staff <company-id>                                    list staff for a company
  availability <company-id> <service-id> <from> <to>    check availability (dates YYYY-MM-DD)
  create <payload.json>                                 create a booking from a JSON payload
  cancel <booking-id>                                   cancel an existing booking
  raw-get <path>                                        call an arbitrary GET path
  raw-post <path> <payload.json>                        call an arbitrary POST path

flags:
  -api-key string    Bokadirekt API key, falls back to BOKADIREKT_API_KEY
  -base-url string   override the API base URL
  -staff-id string   optional staff filter for availability
  -reason string     optional cancellation reason
  -params string     JSON object of query parameters for raw-get
`

func main() {
	apiKey := flag.String("api-key", "", "Bokadirekt API key, falls back to BOKADIREKT_API_KEY")
	baseURL := flag.String("base-url", bokadirekt.DefaultBaseURL, "override the API base URL")
	staffID := flag.String("staff-id", "", "optional staff filter for availability")
	reason := flag.String("reason", "", "optional cancellation reason")
	rawParams := flag.String("params", "", "JSON object of query parameters for raw-get")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.InitConfig()
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	client, err := bokadirekt.New(*baseURL, *apiKey, httpclient.InitHttpClient(&cfg.HttpClient, cb))
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	command, args := args[0], args[1:]

	var result map[string]interface{}
	switch command {
	case "services":
		requireArgs(args, 1, "services <company-id>")
		result, err = client.ListServices(ctx, args[0])
	case "staff":
		requireArgs(args, 1, "staff <company-id>")
		result, err = client.ListStaff(ctx, args[0])
	case "availability":
		requireArgs(args, 4, "availability <company-id> <service-id> <from> <to>")
		result, err = client.CheckAvailability(ctx, args[0], args[1], args[2], args[3], *staffID)
	case "create":
		requireArgs(args, 1, "create <payload.json>")
		var booking map[string]interface{}
		booking, err = loadJSONFile(args[0])
		if err == nil {
			result, err = client.CreateBooking(ctx, booking)
		}
	case "cancel":
		requireArgs(args, 1, "cancel <booking-id>")
		result, err = client.CancelBooking(ctx, args[0], *reason)
	case "raw-get":
		requireArgs(args, 1, "raw-get <path>")
		var params url.Values
		params, err = parseParams(*rawParams)
		if err == nil {
			result, err = client.RawGet(ctx, args[0], params)
		}
	case "raw-post":
		requireArgs(args, 2, "raw-post <path> <payload.json>")
		var body map[string]interface{}
		body, err = loadJSONFile(args[1])
		if err == nil {
			result, err = client.RawPost(ctx, args[0], body)
		}
	default:
		fatal(fmt.Errorf("unsupported command: %s", command))
	}

	if err != nil {
		fatal(err)
	}

	printJSON(result)
}

func requireArgs(args []string, n int, form string) {
	if len(args) != n {
		fatal(fmt.Errorf("usage: bokadirekt %s", form))
	}
}

func loadJSONFile(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return decoded, nil
}

func parseParams(raw string) (url.Values, error) {
	if raw == "" {
		return nil, nil
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid -params JSON: %w", err)
	}
	params := url.Values{}
	for key, value := range decoded {
		params.Set(key, fmt.Sprintf("%v", value))
	}
	return params, nil
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

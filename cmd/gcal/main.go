package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"booking-gateway/internal/pkg/gcal"

	"github.com/goccy/go-json"
	"google.golang.org/api/calendar/v3"
)

const usage = `usage: gcal [flags] <command> [args]

commands:
  create <calendar-id> <event.json>              create an event from a JSON file
  update <calendar-id> <event-id> <event.json>   update an existing event
  delete <calendar-id> <event-id>                delete an event
  list <calendar-id>                             list upcoming events in a window
  freebusy <calendar-id> <start> <end>           check availability (RFC3339 with timezone)

flags:
  -credentials string   path to service account JSON, falls back to GOOGLE_APPLICATION_CREDENTIALS
  -time-min string      window start for list (RFC3339)
  -time-max string      window end for list (RFC3339)
  -max-results int      maximum events to return for list (default 10)
`

func main() {
	credentials := flag.String("credentials", "", "path to service account JSON")
	timeMin := flag.String("time-min", "", "window start for list (RFC3339)")
	timeMax := flag.String("time-max", "", "window end for list (RFC3339)")
	maxResults := flag.Int64("max-results", 10, "maximum events to return for list")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	svc, err := gcal.NewService(ctx, *credentials)
	if err != nil {
		fatal(err)
	}

	command, args := args[0], args[1:]

	switch command {
	case "create":
		requireArgs(args, 2, "create <calendar-id> <event.json>")
		event, err := loadEvent(args[1])
		if err != nil {
			fatal(err)
		}
		created, err := gcal.CreateEvent(svc, args[0], event)
		if err != nil {
			fatal(err)
		}
		printJSON(created)
	case "update":
		requireArgs(args, 3, "update <calendar-id> <event-id> <event.json>")
		event, err := loadEvent(args[2])
		if err != nil {
			fatal(err)
		}
		updated, err := gcal.UpdateEvent(svc, args[0], args[1], event)
		if err != nil {
			fatal(err)
		}
		printJSON(updated)
	case "delete":
		requireArgs(args, 2, "delete <calendar-id> <event-id>")
		if err := gcal.DeleteEvent(svc, args[0], args[1]); err != nil {
			fatal(err)
		}
		fmt.Println("Event deleted.")
	case "list":
		requireArgs(args, 1, "list <calendar-id>")
		events, err := gcal.ListEvents(svc, args[0], *timeMin, *timeMax, *maxResults)
		if err != nil {
			fatal(err)
		}
		printJSON(events)
	case "freebusy":
		requireArgs(args, 3, "freebusy <calendar-id> <start> <end>")
		availability, err := gcal.CheckAvailability(svc, args[0], args[1], args[2])
		if err != nil {
			fatal(err)
		}
		printJSON(availability)
	default:
		fatal(fmt.Errorf("unknown command: %s", command))
	}
}

func requireArgs(args []string, n int, form string) {
	if len(args) != n {
		fatal(fmt.Errorf("usage: gcal %s", form))
	}
}

func loadEvent(path string) (*calendar.Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("event JSON file not found: %s", path)
	}
	var event calendar.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("invalid event JSON in %s: %w", path, err)
	}
	return &event, nil
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

package gcal

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewService builds an authenticated Calendar API client from a service
// account file. The path falls back to GOOGLE_APPLICATION_CREDENTIALS.
func NewService(ctx context.Context, credentialsPath string) (*calendar.Service, error) {
	if credentialsPath == "" {
		credentialsPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if credentialsPath == "" {
		return nil, fmt.Errorf("credentials path must be provided or GOOGLE_APPLICATION_CREDENTIALS set")
	}
	if _, err := os.Stat(credentialsPath); err != nil {
		return nil, fmt.Errorf("credentials file not found: %s", credentialsPath)
	}

	return calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(calendar.CalendarScope),
	)
}

func CreateEvent(svc *calendar.Service, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	return svc.Events.Insert(calendarID, event).Do()
}

func UpdateEvent(svc *calendar.Service, calendarID, eventID string, event *calendar.Event) (*calendar.Event, error) {
	return svc.Events.Update(calendarID, eventID, event).Do()
}

func DeleteEvent(svc *calendar.Service, calendarID, eventID string) error {
	return svc.Events.Delete(calendarID, eventID).Do()
}

func ListEvents(svc *calendar.Service, calendarID, timeMin, timeMax string, maxResults int64) ([]*calendar.Event, error) {
	call := svc.Events.List(calendarID).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime")

	if timeMin != "" {
		value, err := EnsureRFC3339(timeMin)
		if err != nil {
			return nil, err
		}
		call = call.TimeMin(value)
	}
	if timeMax != "" {
		value, err := EnsureRFC3339(timeMax)
		if err != nil {
			return nil, err
		}
		call = call.TimeMax(value)
	}

	events, err := call.Do()
	if err != nil {
		return nil, err
	}
	return events.Items, nil
}

// CheckAvailability runs a freebusy query over the window and returns
// the busy intervals for the calendar.
func CheckAvailability(svc *calendar.Service, calendarID, start, end string) (*calendar.FreeBusyCalendar, error) {
	timeMin, err := EnsureRFC3339(start)
	if err != nil {
		return nil, err
	}
	timeMax, err := EnsureRFC3339(end)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: timeMin,
		TimeMax: timeMax,
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}).Do()
	if err != nil {
		return nil, err
	}

	availability := resp.Calendars[calendarID]
	return &availability, nil
}

// EnsureRFC3339 validates the incoming value and re-emits it in RFC3339
// form. Values without timezone information are rejected.
func EnsureRFC3339(value string) (string, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", fmt.Errorf("could not parse datetime value %q, expected RFC3339 with timezone", value)
	}
	return parsed.Format(time.RFC3339), nil
}

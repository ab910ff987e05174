package schedule

import (
	"fmt"
	"strings"
	"time"

	"booking-gateway/internal/pkg/payload"

	"github.com/markusmobius/go-dateparser"
)

const (
	// CanonicalNameKey always holds the customer name after normalization.
	CanonicalNameKey = "User_Name"
	// PrimaryNameKey wins when both name keys are present and non-empty.
	// It is removed from the normalized payload.
	PrimaryNameKey = "Use_name"

	dateKey    = "Date"
	timeKey    = "Time"
	weekdayKey = "Weekday"
	isoKey     = "ISODateTime"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	isoLayout  = "2006-01-02T15:04:05-07:00"
)

// All normalized bookings are expressed in this timezone.
var stockholmTZ = mustLoadLocation("Europe/Stockholm")

// parserCfg pins the lenient parser behavior: English locale, which
// resolves ambiguous numeric dates month-first ("01/06/2024" is January
// 6th), and UTC for inputs that carry no timezone of their own.
var parserCfg = &dateparser.Configuration{
	Languages:       []string{"en"},
	DefaultTimezone: time.UTC,
}

// ParseError reports a date/time combination that could not be
// interpreted. Input keeps the offending combined string.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "Date and Time must be provided to schedule an appointment"
	}
	return fmt.Sprintf("could not understand date/time input: %q", e.Input)
}

// IdentityError reports that neither name key produced a usable value.
type IdentityError struct{}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("%q or %q must be provided and non-empty", PrimaryNameKey, CanonicalNameKey)
}

// NormalizeBooking resolves the customer-name alias, parses the Date and
// Time fields into a Stockholm instant and overwrites them with their
// canonical forms, adding Weekday and ISODateTime. The input payload is
// not mutated.
func NormalizeBooking(p payload.Payload) (payload.Payload, time.Time, error) {
	normalized := p.Clone()

	userName := normalized.FirstNonEmpty(PrimaryNameKey, CanonicalNameKey)
	if userName == "" {
		return nil, time.Time{}, &IdentityError{}
	}

	instant, err := ParseToStockholm(normalized.String(dateKey), normalized.String(timeKey))
	if err != nil {
		return nil, time.Time{}, err
	}

	normalized[dateKey] = instant.Format(dateLayout)
	normalized[timeKey] = instant.Format(timeLayout)
	normalized[weekdayKey] = instant.Weekday().String()
	normalized[isoKey] = instant.Format(isoLayout)
	normalized[CanonicalNameKey] = userName
	delete(normalized, PrimaryNameKey)

	return normalized, instant, nil
}

// ParseToStockholm combines the date and time strings and parses them
// leniently. Results without an explicit offset are assumed to be UTC
// before conversion to Stockholm time; that assumption lives here and
// nowhere else.
func ParseToStockholm(dateStr, timeStr string) (time.Time, error) {
	combined := strings.TrimSpace(dateStr + " " + timeStr)
	if combined == "" {
		return time.Time{}, &ParseError{}
	}

	parsed, err := dateparser.Parse(parserCfg, combined)
	if err == nil && !parsed.Time.IsZero() {
		return parsed.Time.In(stockholmTZ), nil
	}

	instant, ok := searchDateTime(combined)
	if !ok {
		return time.Time{}, &ParseError{Input: combined}
	}

	return instant.In(stockholmTZ), nil
}

// searchDateTime handles inputs with filler words around the date and
// time tokens, like "please book June 1st 2024". It extracts the
// date/time fragments and reparses them together so a date found in one
// fragment and a clock time found in another end up in one instant.
func searchDateTime(text string) (time.Time, bool) {
	_, results, err := dateparser.Search(parserCfg, text)
	if err != nil || len(results) == 0 {
		return time.Time{}, false
	}

	fragments := make([]string, 0, len(results))
	for _, result := range results {
		fragments = append(fragments, result.Text)
	}

	parsed, err := dateparser.Parse(parserCfg, strings.Join(fragments, " "))
	if err != nil || parsed.Time.IsZero() {
		return results[0].Date.Time, true
	}

	return parsed.Time, true
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load timezone %s: %v", name, err))
	}
	return loc
}

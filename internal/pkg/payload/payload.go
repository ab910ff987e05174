package payload

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Payload is a decoded JSON object. Keys are case-sensitive and matched
// exactly; values keep whatever shape the request body carried.
type Payload map[string]interface{}

// DefaultRequiredFields is the built-in development field set. The order
// is significant: validation reports missing/empty fields in this order.
var DefaultRequiredFields = []string{
	"Service",
	"Phone",
	"Stylist",
	"Date",
	"Use_name",
	"Time",
	"action",
}

// BuildRequiredFields merges the default field set with caller-supplied
// overrides, dropping duplicates while preserving first-seen order. An
// empty merge falls back to the defaults so validation can never become
// vacuously true.
func BuildRequiredFields(overrides []string, includeDefaults bool) []string {
	var fields []string
	if includeDefaults {
		fields = append(fields, DefaultRequiredFields...)
	}
	fields = append(fields, overrides...)

	seen := make(map[string]struct{}, len(fields))
	ordered := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		ordered = append(ordered, field)
	}

	if len(ordered) == 0 {
		return append([]string(nil), DefaultRequiredFields...)
	}
	return ordered
}

// Validate reports which required fields are absent, which are present
// but empty, and which payload keys fall outside the required set. A
// missing field is never also reported as empty. Extras come back in
// sorted order regardless of payload iteration order.
func Validate(p Payload, requiredFields []string, allowEmpty bool) (missing, empty, extras []string) {
	missing = []string{}
	empty = []string{}
	required := make(map[string]struct{}, len(requiredFields))

	for _, field := range requiredFields {
		required[field] = struct{}{}
		value, ok := p[field]
		if !ok {
			missing = append(missing, field)
			continue
		}
		if allowEmpty {
			continue
		}
		if IsEmpty(value) {
			empty = append(empty, field)
		}
	}

	extras = []string{}
	for key := range p {
		if _, ok := required[key]; !ok {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)

	return missing, empty, extras
}

// IsEmpty reports whether a value counts as empty for validation: nil,
// whitespace-only strings, and zero-length collections. Zero numbers and
// false are not empty.
func IsEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func (p Payload) Clone() Payload {
	clone := make(Payload, len(p))
	for key, value := range p {
		clone[key] = value
	}
	return clone
}

// String returns the value under key coerced to a string. Absent and nil
// values come back as "".
func (p Payload) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FirstNonEmpty returns the value of the first listed key that is
// present and non-empty, or "" when none qualifies.
func (p Payload) FirstNonEmpty(keys ...string) string {
	for _, key := range keys {
		value, ok := p[key]
		if !ok || IsEmpty(value) {
			continue
		}
		return p.String(key)
	}
	return ""
}

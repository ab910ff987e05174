package request

import "booking-gateway/internal/pkg/payload"

type ValidatePayload struct {
	Payload payload.Payload `json:"payload" validate:"required"`
	// RequiredFields overrides or extends the default field list.
	RequiredFields  []string `json:"required_fields"`
	IncludeDefaults *bool    `json:"include_defaults"`
	AllowEmpty      bool     `json:"allow_empty"`
}

// Defaults reports whether the default field set should be merged in.
// Absent in the request body means yes.
func (r *ValidatePayload) Defaults() bool {
	if r.IncludeDefaults == nil {
		return true
	}
	return *r.IncludeDefaults
}

// ForwardedBooking is the event consumed from the booking_forwarded
// topic: the normalized payload as it was sent to the webhook.
type ForwardedBooking struct {
	Booking payload.Payload `json:"booking" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

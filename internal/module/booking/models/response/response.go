package response

type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
	Empty   []string `json:"empty"`
	Extras  []string `json:"extras"`
}

type Appointment struct {
	Service      string `json:"service"`
	Stylist      string `json:"stylist"`
	Customer     string `json:"customer"`
	StockholmISO string `json:"stockholm_iso"`
	Weekday      string `json:"weekday"`
}

type BookedAppointment struct {
	Status          string      `json:"status"`
	Appointment     Appointment `json:"appointment"`
	WebhookStatus   int         `json:"webhook_status"`
	WebhookResponse interface{} `json:"webhook_response"`
}

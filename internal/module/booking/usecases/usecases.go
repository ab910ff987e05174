package usecases

import (
	"context"
	"fmt"

	"booking-gateway/internal/module/booking/models/request"
	"booking-gateway/internal/module/booking/models/response"
	"booking-gateway/internal/module/booking/repositories"
	"booking-gateway/internal/pkg/errors"
	"booking-gateway/internal/pkg/log"
	"booking-gateway/internal/pkg/payload"
	"booking-gateway/internal/pkg/schedule"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const TopicBookingForwarded = "booking_forwarded"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	// http
	ValidatePayload(ctx context.Context, req *request.ValidatePayload) (response.ValidationResult, error)
	BookAppointment(ctx context.Context, p payload.Payload) (response.BookedAppointment, error)
	// queue
	SyncUpstreamBooking(ctx context.Context, booking payload.Payload) error
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

func (u *usecase) ValidatePayload(ctx context.Context, req *request.ValidatePayload) (response.ValidationResult, error) {
	required := payload.BuildRequiredFields(req.RequiredFields, req.Defaults())
	if len(required) == 0 {
		return response.ValidationResult{}, errors.BadRequest("no required fields specified")
	}

	missing, empty, extras := payload.Validate(req.Payload, required, req.AllowEmpty)

	return response.ValidationResult{
		Valid:   len(missing) == 0 && len(empty) == 0,
		Missing: missing,
		Empty:   empty,
		Extras:  extras,
	}, nil
}

func (u *usecase) BookAppointment(ctx context.Context, p payload.Payload) (response.BookedAppointment, error) {
	p = p.Clone()

	// fold the legacy name key onto the primary one so required-field
	// validation accepts either spelling
	if name := p.FirstNonEmpty(schedule.PrimaryNameKey, schedule.CanonicalNameKey); name != "" {
		p[schedule.PrimaryNameKey] = name
	}

	missing, empty, _ := payload.Validate(p, payload.DefaultRequiredFields, false)
	if len(missing) > 0 || len(empty) > 0 {
		return response.BookedAppointment{}, errors.SchemaError(missing, empty)
	}

	normalized, instant, err := schedule.NormalizeBooking(p)
	if err != nil {
		return response.BookedAppointment{}, errors.BadRequest(err.Error())
	}

	status, body, err := u.repo.ForwardBooking(ctx, normalized)
	if err != nil {
		return response.BookedAppointment{}, errors.BadGateway(fmt.Sprintf("failed to reach booking service: %v", err))
	}
	if status >= 400 {
		return response.BookedAppointment{}, errors.UpstreamError(status, body)
	}

	u.publishForwarded(ctx, normalized)

	return response.BookedAppointment{
		Status: "success",
		Appointment: response.Appointment{
			Service:      normalized.String("Service"),
			Stylist:      normalized.String("Stylist"),
			Customer:     normalized.String(schedule.CanonicalNameKey),
			StockholmISO: normalized.String("ISODateTime"),
			Weekday:      instant.Weekday().String(),
		},
		WebhookStatus:   status,
		WebhookResponse: body,
	}, nil
}

func (u *usecase) SyncUpstreamBooking(ctx context.Context, booking payload.Payload) error {
	result, err := u.repo.CreateUpstreamBooking(ctx, booking)
	if err != nil {
		return err
	}

	u.log.Info(ctx, "upstream booking created", result)
	return nil
}

// publishForwarded emits the normalized booking for out-of-band
// consumers. Delivery of the event is best effort, the booking itself
// has already been relayed.
func (u *usecase) publishForwarded(ctx context.Context, booking payload.Payload) {
	event := request.ForwardedBooking{Booking: booking}
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal booking_forwarded event", err)
		return
	}

	if err := u.publish.Publish(TopicBookingForwarded, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish booking_forwarded event", err)
	}
}

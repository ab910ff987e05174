package handler

import (
	"context"
	"fmt"

	"booking-gateway/internal/module/booking/models/request"
	"booking-gateway/internal/module/booking/usecases"
	"booking-gateway/internal/pkg/errors"
	"booking-gateway/internal/pkg/helpers"
	"booking-gateway/internal/pkg/payload"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) Root(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "POST JSON to /api/v1/validate or /api/v1/book to verify required fields",
	})
}

func (h *BookingHandler) ValidatePayload(ctx *fiber.Ctx) error {
	var req request.ValidatePayload
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	// call usecase to validate payload
	resp, err := h.Usecase.ValidatePayload(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate payload: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success validate payload")
}

func (h *BookingHandler) BookAppointment(ctx *fiber.Ctx) error {
	var p payload.Payload
	if err := ctx.BodyParser(&p); err != nil {
		// keep the raw body in the log so malformed bookings can be traced
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v body=%s", err, ctx.Body()))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	// call usecase to book appointment
	resp, err := h.Usecase.BookAppointment(ctx.UserContext(), p)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error book appointment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success book appointment")
}

func (h *BookingHandler) ConsumeBookingForwarded(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.ForwardedBooking
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()

	// call usecase to mirror the booking upstream
	if err := h.Usecase.SyncUpstreamBooking(ctx, req.Booking); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error sync upstream booking: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicBookingForwarded,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

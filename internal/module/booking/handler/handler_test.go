package handler_test

import (
	"testing"

	"booking-gateway/internal/module/booking/handler"
	"booking-gateway/internal/module/booking/mocks"
	"booking-gateway/internal/module/booking/models/request"
	"booking-gateway/internal/module/booking/models/response"
	log_internal "booking-gateway/internal/pkg/log"
	"booking-gateway/internal/pkg/payload"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	logMock       *otelzap.Logger
	app           *fiber.App
	validatorTest *validator.Validate
	p             message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	ucm = &mocks.Usecase{}
	logMock = log_internal.SetupLogger()
	validatorTest = validator.New()
	p = NewMockPublisher()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	logMock = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func acquireCtx(body []byte, path string) *fiber.Ctx {
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	ctx.Request().SetRequestURI(path)
	ctx.Request().Header.SetContentType("application/json")
	ctx.Request().Header.SetMethod("POST")
	ctx.Request().SetBody(body)
	return ctx
}

func TestValidatePayload(t *testing.T) {
	setup()
	defer teardown()
	t.Run("Test case 1 | ValidatePayload success", func(t *testing.T) {
		reqBody := request.ValidatePayload{
			Payload: payload.Payload{"Service": "Cut"},
		}

		jsonData, _ := json.Marshal(reqBody)
		ctx := acquireCtx(jsonData, "/api/v1/validate")

		// mock usecase
		ucm.On("ValidatePayload", ctx.UserContext(), mock.AnythingOfType("*request.ValidatePayload")).Return(response.ValidationResult{
			Valid:   false,
			Missing: []string{"Phone"},
			Empty:   []string{},
			Extras:  []string{},
		}, nil)

		// test
		err := h.ValidatePayload(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("Test case 2 | ValidatePayload missing payload field", func(t *testing.T) {
		ctx := acquireCtx([]byte(`{}`), "/api/v1/validate")

		err := h.ValidatePayload(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})

	t.Run("Test case 3 | ValidatePayload malformed body", func(t *testing.T) {
		ctx := acquireCtx([]byte(`{not json`), "/api/v1/validate")

		err := h.ValidatePayload(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestBookAppointment(t *testing.T) {
	setup()
	defer teardown()
	t.Run("Test case 1 | BookAppointment success", func(t *testing.T) {
		booking := payload.Payload{
			"Service":  "Cut",
			"Phone":    "123",
			"Stylist":  "Alex",
			"Date":     "2024-06-01",
			"Use_name": "Jamie",
			"Time":     "13:00",
			"action":   "book",
		}

		jsonData, _ := json.Marshal(booking)
		ctx := acquireCtx(jsonData, "/api/v1/book")

		// mock usecase
		ucm.On("BookAppointment", ctx.UserContext(), mock.AnythingOfType("payload.Payload")).Return(response.BookedAppointment{
			Status:        "success",
			WebhookStatus: 200,
		}, nil)

		// test
		err := h.BookAppointment(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("Test case 2 | BookAppointment usecase error is mapped", func(t *testing.T) {
		setup()
		jsonData, _ := json.Marshal(payload.Payload{"Service": "Cut"})
		ctx := acquireCtx(jsonData, "/api/v1/book")

		ucm.On("BookAppointment", ctx.UserContext(), mock.AnythingOfType("payload.Payload")).Return(response.BookedAppointment{}, assert.AnError)

		err := h.BookAppointment(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, ctx.Response().StatusCode())
	})
}

func TestConsumeBookingForwarded(t *testing.T) {
	setup()
	defer teardown()
	t.Run("Test case 1 | ConsumeBookingForwarded success", func(t *testing.T) {
		event := request.ForwardedBooking{
			Booking: payload.Payload{"Service": "Cut"},
		}
		jsonData, _ := json.Marshal(event)
		msg := message.NewMessage("1", jsonData)

		ucm.On("SyncUpstreamBooking", mock.Anything, mock.AnythingOfType("payload.Payload")).Return(nil)

		err := h.ConsumeBookingForwarded(msg)
		assert.NoError(t, err)
	})

	t.Run("Test case 2 | ConsumeBookingForwarded malformed message", func(t *testing.T) {
		msg := message.NewMessage("2", []byte(`{not json`))

		err := h.ConsumeBookingForwarded(msg)
		assert.Error(t, err)
	})
}

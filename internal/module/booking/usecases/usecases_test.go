package usecases_test

import (
	"context"
	"testing"

	"booking-gateway/internal/module/booking/mocks"
	"booking-gateway/internal/module/booking/models/request"
	"booking-gateway/internal/module/booking/usecases"
	"booking-gateway/internal/pkg/errors"
	"booking-gateway/internal/pkg/log"
	log_internal "booking-gateway/internal/pkg/log"
	"booking-gateway/internal/pkg/payload"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
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
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func bookingPayload() payload.Payload {
	return payload.Payload{
		"Service":  "Cut",
		"Phone":    "123",
		"Stylist":  "Alex",
		"Date":     "2024-06-01",
		"Use_name": "Jamie",
		"Time":     "13:00",
		"action":   "book",
	}
}

func TestValidatePayload(t *testing.T) {
	setup()
	defer teardown()

	t.Run("valid payload", func(t *testing.T) {
		ctx := context.Background()
		includeDefaults := false
		req := request.ValidatePayload{
			Payload:         bookingPayload(),
			RequiredFields:  payload.DefaultRequiredFields,
			IncludeDefaults: &includeDefaults,
		}

		resp, err := uc.ValidatePayload(ctx, &req)
		require.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Missing)
		assert.Empty(t, resp.Empty)
	})

	t.Run("missing fields reported", func(t *testing.T) {
		ctx := context.Background()
		req := request.ValidatePayload{
			Payload: payload.Payload{"Service": "Cut"},
		}

		resp, err := uc.ValidatePayload(ctx, &req)
		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Contains(t, resp.Missing, "Phone")
	})

	t.Run("extras reported for unknown keys", func(t *testing.T) {
		ctx := context.Background()
		p := bookingPayload()
		p["Notes"] = "trim the sides"
		req := request.ValidatePayload{Payload: p}

		resp, err := uc.ValidatePayload(ctx, &req)
		require.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Equal(t, []string{"Notes"}, resp.Extras)
	})
}

func TestBookAppointment(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := context.Background()

		repoMock.On("ForwardBooking", ctx, mock.AnythingOfType("payload.Payload")).Return(200, map[string]interface{}{"status": "ok"}, nil).Once()

		resp, err := uc.BookAppointment(ctx, bookingPayload())
		require.NoError(t, err)

		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, 200, resp.WebhookStatus)
		assert.Equal(t, "Jamie", resp.Appointment.Customer)
		assert.Equal(t, "Saturday", resp.Appointment.Weekday)
		repoMock.AssertExpectations(t)
	})

	t.Run("forwarded payload carries normalized fields", func(t *testing.T) {
		ctx := context.Background()

		var forwarded payload.Payload
		repoMock.On("ForwardBooking", ctx, mock.AnythingOfType("payload.Payload")).Run(func(args mock.Arguments) {
			forwarded = args.Get(1).(payload.Payload)
		}).Return(200, nil, nil).Once()

		_, err := uc.BookAppointment(ctx, bookingPayload())
		require.NoError(t, err)

		assert.Equal(t, "Jamie", forwarded["User_Name"])
		assert.NotContains(t, forwarded, "Use_name")
		assert.Equal(t, "15:00", forwarded["Time"])
		assert.Equal(t, "Saturday", forwarded["Weekday"])
	})

	t.Run("legacy name key accepted", func(t *testing.T) {
		ctx := context.Background()
		p := bookingPayload()
		delete(p, "Use_name")
		p["User_Name"] = "Morgan"

		repoMock.On("ForwardBooking", ctx, mock.AnythingOfType("payload.Payload")).Return(200, nil, nil).Once()

		resp, err := uc.BookAppointment(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "Morgan", resp.Appointment.Customer)
	})

	t.Run("missing fields rejected before normalization", func(t *testing.T) {
		ctx := context.Background()

		_, err := uc.BookAppointment(ctx, payload.Payload{"Service": "Cut"})
		require.Error(t, err)

		resp, ok := err.(*errors.ErrorResp)
		require.True(t, ok)
		assert.Equal(t, 400, resp.Code)
		detail := resp.Detail.(map[string][]string)
		assert.Contains(t, detail["missing"], "Phone")
	})

	t.Run("unparsable date rejected", func(t *testing.T) {
		ctx := context.Background()
		p := bookingPayload()
		p["Date"] = "not-a-date"
		p["Time"] = "whenever"

		_, err := uc.BookAppointment(ctx, p)
		require.Error(t, err)

		resp, ok := err.(*errors.ErrorResp)
		require.True(t, ok)
		assert.Equal(t, 400, resp.Code)
		assert.Contains(t, resp.Message, "not-a-date")
	})

	t.Run("unreachable webhook maps to bad gateway", func(t *testing.T) {
		ctx := context.Background()

		repoMock.On("ForwardBooking", ctx, mock.AnythingOfType("payload.Payload")).Return(0, nil, assert.AnError).Once()

		_, err := uc.BookAppointment(ctx, bookingPayload())
		require.Error(t, err)

		resp, ok := err.(*errors.ErrorResp)
		require.True(t, ok)
		assert.Equal(t, 502, resp.Code)
	})

	t.Run("webhook error status maps to bad gateway with upstream body", func(t *testing.T) {
		ctx := context.Background()

		repoMock.On("ForwardBooking", ctx, mock.AnythingOfType("payload.Payload")).Return(500, map[string]interface{}{"detail": "error"}, nil).Once()

		_, err := uc.BookAppointment(ctx, bookingPayload())
		require.Error(t, err)

		resp, ok := err.(*errors.ErrorResp)
		require.True(t, ok)
		assert.Equal(t, 502, resp.Code)
		detail := resp.Detail.(map[string]interface{})
		assert.Equal(t, 500, detail["status"])
	})
}

func TestSyncUpstreamBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := context.Background()
		booking := bookingPayload()

		repoMock.On("CreateUpstreamBooking", ctx, booking).Return(map[string]interface{}{"bookingId": "abc"}, nil).Once()

		err := uc.SyncUpstreamBooking(ctx, booking)
		assert.NoError(t, err)
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		ctx := context.Background()
		booking := bookingPayload()

		repoMock.On("CreateUpstreamBooking", ctx, booking).Return(nil, assert.AnError).Once()

		err := uc.SyncUpstreamBooking(ctx, booking)
		assert.Error(t, err)
	})
}

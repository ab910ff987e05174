package router

import (
	"booking-gateway/internal/module/booking/handler"
	"booking-gateway/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	app.Get("/", handlerBooking.Root)

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/validate", m.RequireJSON, handlerBooking.ValidatePayload)
	v1.Post("/book", m.RequireJSON, handlerBooking.BookAppointment)

	return app

}

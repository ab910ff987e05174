package middleware

import (
	"strings"

	"booking-gateway/internal/pkg/errors"
	"booking-gateway/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log *otelzap.Logger
}

// RequireJSON rejects bodies that do not declare a JSON content type
// before any handler tries to decode them.
func (m *Middleware) RequireJSON(ctx *fiber.Ctx) error {
	contentType := ctx.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		m.Log.Ctx(ctx.UserContext()).Error("error validate content type: " + contentType)
		return helpers.RespError(ctx, m.Log, errors.BadRequest("request body must be application/json"))
	}

	return ctx.Next()
}

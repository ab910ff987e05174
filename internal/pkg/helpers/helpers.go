package helpers

import (
	"booking-gateway/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Data:    data,
		Message: message,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	if resp, ok := err.(*errors.ErrorResp); ok {
		return ctx.Status(resp.Code).JSON(resp)
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(errors.InternalServerError(err.Error()))
}

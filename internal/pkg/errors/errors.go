package errors

import "github.com/gofiber/fiber/v2"

// ErrorResp is the transport-facing error shape. Code maps directly onto
// the HTTP status returned by helpers.RespError.
type ErrorResp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) *ErrorResp {
	return &ErrorResp{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}
}

// SchemaError reports the required fields that failed validation. The
// missing/empty lists are carried as-is so the caller can enumerate them.
func SchemaError(missing, empty []string) *ErrorResp {
	detail := map[string][]string{}
	if len(missing) > 0 {
		detail["missing"] = missing
	}
	if len(empty) > 0 {
		detail["empty"] = empty
	}
	return &ErrorResp{
		Code:    fiber.StatusBadRequest,
		Message: "payload is missing required fields or has empty values",
		Detail:  detail,
	}
}

func BadGateway(message string) *ErrorResp {
	return &ErrorResp{
		Code:    fiber.StatusBadGateway,
		Message: message,
	}
}

// UpstreamError wraps a non-2xx answer from the downstream booking
// webhook, keeping the upstream status and decoded body.
func UpstreamError(status int, body interface{}) *ErrorResp {
	return &ErrorResp{
		Code:    fiber.StatusBadGateway,
		Message: "booking service returned an error",
		Detail: map[string]interface{}{
			"status": status,
			"body":   body,
		},
	}
}

func InternalServerError(message string) *ErrorResp {
	return &ErrorResp{
		Code:    fiber.StatusInternalServerError,
		Message: message,
	}
}

package serverutils

import (
	"literinth-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the structured error
// body. Internal causes go to the log channel, never to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		apiErr := AsApiError(err)
		status := apiErr.HTTPStatus()

		if apiErr.Kind == KindInternal && log != nil {
			details := map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
			}
			if cause := apiErr.Unwrap(); cause != nil {
				details["error"] = cause.Error()
			}
			log.Error("http", "request failed", details)
		}

		return ctx.Status(status).JSON(ErrorResponse(status, apiErr.Kind, apiErr.Message))
	}
}

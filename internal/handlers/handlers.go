package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// logError records a server-side failure with its request path and id,
// which the PG log handler persists. Clients only ever see the generic
// message the caller returns.
func logError(c *fiber.Ctx, msg string, err error) {
	requestID, _ := c.Locals("requestid").(string)
	slog.Error(msg,
		"error", err,
		"path", c.Path(),
		"request_id", requestID,
	)
}
